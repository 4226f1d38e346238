package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour-console/internal/config"
	"github.com/rocketscienceinc/connectfour-console/internal/entity"
	"github.com/rocketscienceinc/connectfour-console/internal/service"
	"github.com/rocketscienceinc/connectfour-console/internal/usecase"
	"github.com/rocketscienceinc/connectfour-console/transport/console"
)

var ErrInterrupted = errors.New("game interrupted")

type result struct {
	outcome entity.RoundOutcome
	winner  *entity.Player
	err     error
}

// RunApp - runs one console game on in/out until it is won, drawn or interrupted.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Play(ctx, logger, conf, in, out)
}

// Play - same as RunApp with the caller owning cancellation.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	gameUseCase := usecase.NewGameUseCase(
		logger,
		conf.Board,
		console.NewPrompter(in, out),
		console.NewRenderer(out, conf.Render.Padding),
		console.NewReporter(out),
		service.NewPlayerService(),
	)

	// the prompter blocks on input, so the game runs aside while we watch for cancellation
	resultCh := make(chan result, 1)
	go func() {
		outcome, winner, err := gameUseCase.Run(ctx)
		resultCh <- result{outcome: outcome, winner: winner, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return fmt.Errorf("game failed: %w", res.err)
		}

		if res.winner != nil {
			log.Info("game finished", "outcome", res.outcome, "winner", res.winner.Name)
		} else {
			log.Info("game finished", "outcome", res.outcome)
		}

		return nil
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
		return ErrInterrupted
	}
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour-console/internal/apperror"
	"github.com/rocketscienceinc/connectfour-console/internal/config"
	"github.com/rocketscienceinc/connectfour-console/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-console/internal/entity"
)

type GameUseCase interface {
	Setup(ctx context.Context) error
	PlayRound(ctx context.Context) (entity.RoundOutcome, error)
	Run(ctx context.Context) (entity.RoundOutcome, *entity.Player, error)

	CurrentPlayer() *entity.Player
	Board() *connectfour.Board
}

type prompterDep interface {
	ReadPlayerName(ctx context.Context, ordinal int) (string, error)
	ReadChip(ctx context.Context, playerName string) (entity.Chip, error)
	ReadDimension(ctx context.Context, name string, minimum, maximum int) (int, error)
	ReadColumn(ctx context.Context, player *entity.Player, board *connectfour.Board) (int, error)
}

type rendererDep interface {
	Render(board *connectfour.Board) error
}

type reporterDep interface {
	AnnounceChips(first, second *entity.Player) error
	AnnounceOutcome(outcome entity.RoundOutcome, player *entity.Player) error
}

type playerServiceDep interface {
	CreatePlayers(firstName, secondName string, firstChip entity.Chip) (*entity.Player, *entity.Player, error)
}

type gameUseCase struct {
	logger *slog.Logger
	bounds config.Board

	prompter      prompterDep
	renderer      rendererDep
	reporter      reporterDep
	playerService playerServiceDep

	board    *connectfour.Board
	detector *connectfour.WinDetector
	playerA  *entity.Player
	playerB  *entity.Player
	current  *entity.Player
	outcome  entity.RoundOutcome
}

func NewGameUseCase(
	logger *slog.Logger,
	bounds config.Board,
	prompter prompterDep,
	renderer rendererDep,
	reporter reporterDep,
	playerService playerServiceDep,
) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "game"),
		bounds: bounds,

		prompter:      prompter,
		renderer:      renderer,
		reporter:      reporter,
		playerService: playerService,
	}
}

// Setup - collects players, chips and dimensions, then shows the empty board.
func (that *gameUseCase) Setup(ctx context.Context) error {
	firstName, err := that.prompter.ReadPlayerName(ctx, 1)
	if err != nil {
		return fmt.Errorf("failed to read first player name: %w", err)
	}

	secondName, err := that.prompter.ReadPlayerName(ctx, 2)
	if err != nil {
		return fmt.Errorf("failed to read second player name: %w", err)
	}

	chip, err := that.prompter.ReadChip(ctx, firstName)
	if err != nil {
		return fmt.Errorf("failed to read chip: %w", err)
	}

	playerA, playerB, err := that.playerService.CreatePlayers(firstName, secondName, chip)
	if err != nil {
		return fmt.Errorf("failed to create players: %w", err)
	}

	if err = that.reporter.AnnounceChips(playerA, playerB); err != nil {
		return fmt.Errorf("failed to announce chips: %w", err)
	}

	dimensions, err := that.readDimensions(ctx)
	if err != nil {
		return err
	}

	board, err := connectfour.NewBoard(dimensions.Rows, dimensions.Columns)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	that.board = board
	that.detector = connectfour.NewWinDetector(board)
	that.playerA = playerA
	that.playerB = playerB
	that.current = playerA
	that.outcome = entity.OutcomeContinue

	that.logger.Info("game set up",
		"player_a", playerA.Name, "chip_a", playerA.Chip.String(),
		"player_b", playerB.Name, "chip_b", playerB.Chip.String(),
		"rows", dimensions.Rows, "columns", dimensions.Columns)

	if err = that.renderer.Render(board); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func (that *gameUseCase) readDimensions(ctx context.Context) (entity.Dimensions, error) {
	rows, err := that.prompter.ReadDimension(ctx, "rows", that.bounds.MinDimension, that.bounds.MaxDimension)
	if err != nil {
		return entity.Dimensions{}, fmt.Errorf("failed to read rows: %w", err)
	}

	columns, err := that.prompter.ReadDimension(ctx, "columns", that.bounds.MinDimension, that.bounds.MaxDimension)
	if err != nil {
		return entity.Dimensions{}, fmt.Errorf("failed to read columns: %w", err)
	}

	dimensions := entity.Dimensions{Rows: rows, Columns: columns}
	if !that.bounds.Contains(rows) || !that.bounds.Contains(columns) {
		return entity.Dimensions{}, fmt.Errorf("%w: %dx%d outside [%d, %d]",
			apperror.ErrConfiguration, rows, columns, that.bounds.MinDimension, that.bounds.MaxDimension)
	}

	return dimensions, nil
}

// PlayRound - one drop by the current player. Players swap only when the game goes on.
func (that *gameUseCase) PlayRound(ctx context.Context) (entity.RoundOutcome, error) {
	if that.board == nil {
		return "", apperror.ErrGameNotSetUp
	}

	if that.outcome.IsFinal() {
		return that.outcome, apperror.ErrGameFinished
	}

	player := that.current

	column, err := that.prompter.ReadColumn(ctx, player, that.board)
	if err != nil {
		return "", fmt.Errorf("failed to read column: %w", err)
	}

	row, err := that.board.Insert(column, player.Chip)
	if err != nil {
		return "", fmt.Errorf("failed to insert chip: %w", err)
	}

	if err = that.renderer.Render(that.board); err != nil {
		return "", fmt.Errorf("failed to render board: %w", err)
	}

	that.outcome = that.detector.Evaluate(column, row, player.Chip)

	that.logger.Debug("chip inserted",
		"player", player.Name, "chip", player.Chip.String(),
		"column", column, "row", row, "outcome", that.outcome)

	if that.outcome == entity.OutcomeContinue {
		that.swapPlayers()
	}

	return that.outcome, nil
}

// Run - plays the whole game and returns the winner, nil on a draw.
func (that *gameUseCase) Run(ctx context.Context) (entity.RoundOutcome, *entity.Player, error) {
	if err := that.Setup(ctx); err != nil {
		return "", nil, fmt.Errorf("failed to set up game: %w", err)
	}

	outcome := entity.OutcomeContinue
	for !outcome.IsFinal() {
		if err := ctx.Err(); err != nil {
			return outcome, nil, err
		}

		var err error
		if outcome, err = that.PlayRound(ctx); err != nil {
			return outcome, nil, fmt.Errorf("failed to play round: %w", err)
		}
	}

	if err := that.reporter.AnnounceOutcome(outcome, that.current); err != nil {
		return outcome, nil, fmt.Errorf("failed to announce outcome: %w", err)
	}

	var winner *entity.Player
	if outcome == entity.OutcomeWin {
		winner = that.current
	}

	that.logger.Info("game over", "outcome", outcome, "player", that.current.Name)

	return outcome, winner, nil
}

func (that *gameUseCase) CurrentPlayer() *entity.Player {
	return that.current
}

func (that *gameUseCase) Board() *connectfour.Board {
	return that.board
}

func (that *gameUseCase) swapPlayers() {
	if that.current == that.playerA {
		that.current = that.playerB
	} else {
		that.current = that.playerA
	}
}

package console

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/connectfour-console/internal/entity"
)

// Reporter prints setup and end-of-game messages.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (that *Reporter) AnnounceChips(first, second *entity.Player) error {
	_, err := fmt.Fprintf(that.out, "%s selected chip: %s\n%s, your chip is: %s\n", first.Name, first.Chip, second.Name, second.Chip)
	if err != nil {
		return fmt.Errorf("announce chips: %w", err)
	}

	return nil
}

// AnnounceOutcome - player is the one who made the last move.
func (that *Reporter) AnnounceOutcome(outcome entity.RoundOutcome, player *entity.Player) error {
	var message string

	switch outcome {
	case entity.OutcomeWin:
		message = fmt.Sprintf("Game Over, %s won!", player.Name)
	case entity.OutcomeDraw:
		message = "GAME OVER. WE HAVE A DRAW"
	default:
		return nil
	}

	if _, err := fmt.Fprintln(that.out, message); err != nil {
		return fmt.Errorf("announce outcome: %w", err)
	}

	return nil
}

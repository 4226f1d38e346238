package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour-console/internal/apperror"
	"github.com/rocketscienceinc/connectfour-console/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-console/internal/entity"
)

var ordinals = map[int]string{1: "1st", 2: "2nd"}

// Prompter asks questions on out and keeps asking until the answer on in is acceptable.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine - prompts until a non-empty line is entered.
func (that *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if _, err := fmt.Fprintf(that.out, "%s: ", prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return "", apperror.ErrInputClosed
		}

		if input := strings.TrimSpace(that.scanner.Text()); NotEmpty(input) {
			return input, nil
		}
	}
}

// ReadString - prompts until the line satisfies the constraint, switching to errPrompt after a miss.
func (that *Prompter) ReadString(ctx context.Context, prompt, errPrompt string, constraint Constraint[string]) (string, error) {
	current := prompt
	for {
		input, err := that.ReadLine(ctx, current)
		if err != nil {
			return "", err
		}

		if constraint(input) {
			return input, nil
		}

		if errPrompt != "" {
			current = errPrompt
		}
	}
}

// ReadInt - prompts until a number satisfying the constraint is entered.
func (that *Prompter) ReadInt(ctx context.Context, prompt, errPrompt string, constraint Constraint[int]) (int, error) {
	current := prompt
	for {
		input, err := that.ReadLine(ctx, current)
		if err != nil {
			return 0, err
		}

		number, err := strconv.Atoi(input)
		if err != nil {
			if _, err = fmt.Fprint(that.out, "Not a number. "); err != nil {
				return 0, fmt.Errorf("write prompt: %w", err)
			}
			continue
		}

		if constraint(number) {
			return number, nil
		}

		if errPrompt != "" {
			current = errPrompt
		}
	}
}

func (that *Prompter) ReadPlayerName(ctx context.Context, ordinal int) (string, error) {
	return that.ReadLine(ctx, fmt.Sprintf("Please enter the name of the %s player", ordinals[ordinal]))
}

func (that *Prompter) ReadChip(ctx context.Context, playerName string) (entity.Chip, error) {
	isChip := func(input string) bool {
		_, err := entity.ParseChip(input)
		return err == nil
	}

	input, err := that.ReadString(ctx,
		fmt.Sprintf("%s, please select your chip", playerName),
		"Invalid input, please enter 'x' or 'o'",
		isChip)
	if err != nil {
		return entity.ChipNone, err
	}

	return entity.ParseChip(input)
}

// ReadDimension - name is "rows" or "columns".
func (that *Prompter) ReadDimension(ctx context.Context, name string, minimum, maximum int) (int, error) {
	return that.ReadInt(ctx,
		fmt.Sprintf("Please enter the number of %s", name),
		fmt.Sprintf("Incorrect input. Please enter the number of %s [%d, %d]", name, minimum, maximum),
		DimensionConstraint(minimum, maximum))
}

// ReadColumn - players count columns from 1, the returned index counts from 0.
func (that *Prompter) ReadColumn(ctx context.Context, player *entity.Player, board *connectfour.Board) (int, error) {
	column, err := that.ReadInt(ctx,
		fmt.Sprintf("%s, your turn. Select column", player.Name),
		"Invalid input, enter again",
		ColumnConstraint(board))
	if err != nil {
		return 0, err
	}

	return column - 1, nil
}

package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour-console/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-console/internal/entity"
)

// Renderer draws the board top row first, followed by a divider and 1-based column labels.
type Renderer struct {
	out     io.Writer
	padding int
}

func NewRenderer(out io.Writer, padding int) *Renderer {
	return &Renderer{
		out:     out,
		padding: padding,
	}
}

func (that *Renderer) Render(board *connectfour.Board) error {
	var builder strings.Builder

	pad := strings.Repeat(" ", that.padding)
	builder.WriteString(strings.Repeat("\n", that.padding))

	for row := board.Rows() - 1; row >= 0; row-- {
		builder.WriteString(pad + "|  ")
		for column := 0; column < board.Columns(); column++ {
			tile, err := board.TileAt(column, row)
			if err != nil {
				return fmt.Errorf("render board: %w", err)
			}
			builder.WriteString(tile.String() + "  ")
		}
		builder.WriteString("|\n")
	}

	width := board.Columns() + (board.Columns()+1)*2 + 2
	builder.WriteString(pad + strings.Repeat(entity.TileEmpty.String(), width) + "\n")

	builder.WriteString(pad + "   ")
	for label := 1; label <= board.Columns(); label++ {
		builder.WriteString(strconv.Itoa(label))
		// two digit labels need less padding
		if label >= 10 {
			builder.WriteString(" ")
		} else {
			builder.WriteString("  ")
		}
	}
	builder.WriteString("\n")

	if _, err := io.WriteString(that.out, builder.String()); err != nil {
		return fmt.Errorf("render board: %w", err)
	}

	return nil
}

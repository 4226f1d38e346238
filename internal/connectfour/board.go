package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-console/internal/apperror"
	"github.com/rocketscienceinc/connectfour-console/internal/entity"
)

// MinDimension is the smallest number of rows or columns a board accepts.
const MinDimension = 4

// Board is a grid of tiles addressed by (column, row), rows counted from the bottom.
// Cells are only ever written once, by Insert.
type Board struct {
	rows    int
	columns int
	grid    [][]entity.Tile
}

// NewBoard - allocates an empty board. Upper bounds are left to the caller.
func NewBoard(rows, columns int) (*Board, error) {
	if rows < MinDimension || columns < MinDimension {
		return nil, fmt.Errorf("%w: %d rows x %d columns, minimum is %d", apperror.ErrConfiguration, rows, columns, MinDimension)
	}

	grid := make([][]entity.Tile, columns)
	for column := range grid {
		grid[column] = make([]entity.Tile, rows)
	}

	return &Board{
		rows:    rows,
		columns: columns,
		grid:    grid,
	}, nil
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Columns() int {
	return that.columns
}

func (that *Board) Dimensions() entity.Dimensions {
	return entity.Dimensions{Rows: that.rows, Columns: that.columns}
}

// Insert - drops the chip into the column and returns the row it landed on.
func (that *Board) Insert(column int, chip entity.Chip) (int, error) {
	if !chip.IsValid() {
		return -1, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrInvalidChip)
	}

	if !that.CanInsert(column) {
		return -1, fmt.Errorf("%w: column %d has no room", apperror.ErrInvalidMove, column)
	}

	for row := 0; row < that.rows; row++ {
		if that.grid[column][row].IsEmpty() {
			that.grid[column][row] = chip.Tile()
			return row, nil
		}
	}

	// unreachable while the top cell is empty
	return -1, fmt.Errorf("%w: column %d has no room", apperror.ErrInvalidMove, column)
}

// CanInsert - reports whether the column exists and its top cell is still empty.
func (that *Board) CanInsert(column int) bool {
	top := that.rows - 1
	return that.inBounds(column, top) && that.grid[column][top].IsEmpty()
}

// IsFull - chips stack bottom-up, so a filled top row means no drop is left.
func (that *Board) IsFull() bool {
	for column := 0; column < that.columns; column++ {
		if that.CanInsert(column) {
			return false
		}
	}

	return true
}

func (that *Board) TileAt(column, row int) (entity.Tile, error) {
	if !that.inBounds(column, row) {
		return entity.TileEmpty, fmt.Errorf("%w: (%d, %d) on a %dx%d board", apperror.ErrIndexOutOfRange, column, row, that.columns, that.rows)
	}

	return that.grid[column][row], nil
}

func (that *Board) inBounds(column, row int) bool {
	return column >= 0 && column < that.columns && row >= 0 && row < that.rows
}

package connectfour

import "github.com/rocketscienceinc/connectfour-console/internal/entity"

// LineForWin is the number of consecutive chips that wins a round.
const LineForWin = 4

// Direction is a line through the last placed chip.
type Direction struct {
	Name string

	stepColumn   int
	stepRow      int
	backwardOnly bool
}

func (that Direction) String() string {
	return that.Name
}

var (
	Horizontal      = Direction{Name: "horizontal", stepColumn: 1, stepRow: 0}
	Vertical        = Direction{Name: "vertical", stepColumn: 0, stepRow: 1, backwardOnly: true}
	RisingDiagonal  = Direction{Name: "rising diagonal", stepColumn: 1, stepRow: 1}
	FallingDiagonal = Direction{Name: "falling diagonal", stepColumn: 1, stepRow: -1}

	Directions = []Direction{Horizontal, Vertical, RisingDiagonal, FallingDiagonal}
)

// WinDetector decides whether the last insertion completed a line.
// It only ever reads the board.
type WinDetector struct {
	board *Board
}

func NewWinDetector(board *Board) *WinDetector {
	return &WinDetector{board: board}
}

// HasWon - checks every direction through (column, row) for the acting chip.
func (that *WinDetector) HasWon(column, row int, chip entity.Chip) bool {
	_, won := that.WinningDirection(column, row, chip)
	return won
}

// WinningDirection - returns the first direction that holds a winning line.
func (that *WinDetector) WinningDirection(column, row int, chip entity.Chip) (Direction, bool) {
	if !that.board.inBounds(column, row) || !chip.IsValid() {
		return Direction{}, false
	}

	for _, direction := range Directions {
		if that.scan(column, row, chip, direction) {
			return direction, true
		}
	}

	return Direction{}, false
}

// Evaluate - derives the round outcome for a chip that just landed on (column, row).
func (that *WinDetector) Evaluate(column, row int, chip entity.Chip) entity.RoundOutcome {
	switch {
	case that.HasWon(column, row, chip):
		return entity.OutcomeWin
	case that.board.IsFull():
		return entity.OutcomeDraw
	default:
		return entity.OutcomeContinue
	}
}

// scan walks a window of 2*LineForWin-1 cells centered on (column, row).
// Backward-only directions stop at the center and give up on the first gap,
// the others skip cells off the board and stop on a gap past the center.
func (that *WinDetector) scan(column, row int, chip entity.Chip, direction Direction) bool {
	first, last := -(LineForWin - 1), LineForWin-1
	if direction.backwardOnly {
		last = 0
	}

	consecutive := 0
	for offset := first; offset <= last; offset++ {
		c := column + offset*direction.stepColumn
		r := row + offset*direction.stepRow

		if !that.board.inBounds(c, r) {
			if direction.backwardOnly {
				return false
			}
			continue
		}

		if !that.board.grid[c][r].Holds(chip) {
			if direction.backwardOnly || offset > 0 {
				return false
			}
			consecutive = 0
			continue
		}

		consecutive++
		if consecutive >= LineForWin {
			return true
		}
	}

	return false
}

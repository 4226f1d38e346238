package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/connectfour-console/internal/apperror"
)

// Chip is the mark a player drops into the board.
type Chip uint8

const (
	ChipNone Chip = Chip(TileEmpty)
	ChipX    Chip = Chip(TileX)
	ChipO    Chip = Chip(TileO)
)

// ParseChip - parses user input such as "x" or "O" into a chip.
func ParseChip(input string) (Chip, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "x":
		return ChipX, nil
	case "o":
		return ChipO, nil
	default:
		return ChipNone, fmt.Errorf("%w: %q", apperror.ErrInvalidChip, input)
	}
}

func (that Chip) IsValid() bool {
	return that == ChipX || that == ChipO
}

// Tile - returns the board tile this chip leaves behind.
func (that Chip) Tile() Tile {
	if !that.IsValid() {
		return TileEmpty
	}
	return Tile(that)
}

// Other - returns the complementary chip.
func (that Chip) Other() Chip {
	switch that {
	case ChipX:
		return ChipO
	case ChipO:
		return ChipX
	default:
		return ChipNone
	}
}

func (that Chip) String() string {
	return that.Tile().String()
}

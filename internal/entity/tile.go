package entity

// Tile is the content of a single board cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileX
	TileO
)

func (that Tile) String() string {
	switch that {
	case TileX:
		return "x"
	case TileO:
		return "o"
	default:
		return "-"
	}
}

func (that Tile) IsEmpty() bool {
	return that == TileEmpty
}

// Holds reports whether the tile carries the given chip.
func (that Tile) Holds(chip Chip) bool {
	return chip.IsValid() && that == chip.Tile()
}

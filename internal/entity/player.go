package entity

// Player holds information about a player in the game.
type Player struct {
	ID   string `json:"id"   validate:"required,uuid4"`
	Name string `json:"name" validate:"required"`
	Chip Chip   `json:"chip" validate:"oneof=1 2"`
}

func (that *Player) Owns(chip Chip) bool {
	return that != nil && that.Chip == chip
}

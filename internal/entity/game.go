package entity

// RoundOutcome is the result of a single chip insertion.
type RoundOutcome string

const (
	OutcomeContinue RoundOutcome = "continue"
	OutcomeWin      RoundOutcome = "win"
	OutcomeDraw     RoundOutcome = "draw"
)

func (that RoundOutcome) IsFinal() bool {
	return that == OutcomeWin || that == OutcomeDraw
}

// Dimensions are the board size chosen during setup.
type Dimensions struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

package console

import "strings"

// Constraint is a predicate an input has to satisfy before a prompt returns it.
type Constraint[T any] func(input T) bool

// DimensionConstraint - accepts sizes within [minimum, maximum].
func DimensionConstraint(minimum, maximum int) Constraint[int] {
	return func(input int) bool {
		return input >= minimum && input <= maximum
	}
}

// ColumnConstraint - accepts 1-based column numbers that still have room.
func ColumnConstraint(board columnChecker) Constraint[int] {
	return func(input int) bool {
		return input >= 1 && input <= board.Columns() && board.CanInsert(input-1)
	}
}

func NotEmpty(input string) bool {
	return strings.TrimSpace(input) != ""
}

type columnChecker interface {
	Columns() int
	CanInsert(column int) bool
}

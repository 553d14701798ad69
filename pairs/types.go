package pairs

import (
	"errors"
	"fmt"
)

// ErrTooLarge indicates the R·C·R·C state space exceeds MaxSlots.
var ErrTooLarge = errors.New("pairs: state space too large")

// Pair is the joint position of walker A at (I1,J1) and walker B at (I2,J2).
type Pair struct {
	I1, J1 int
	I2, J2 int
}

// String renders p as "(i1,j1)|(i2,j2)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)|(%d,%d)", p.I1, p.J1, p.I2, p.J2)
}

// CoLocated reports whether both walkers occupy the same cell.
func (p Pair) CoLocated() bool {
	return p.I1 == p.I2 && p.J1 == p.J2
}

// Status tells how to read the value stored for a state.
type Status uint8

const (
	// Uncomputed marks a state that has not been evaluated.
	Uncomputed Status = iota
	// Unreachable marks a state from which no valid continuation exists.
	Unreachable
	// Known marks a state whose value has been computed.
	Known
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Uncomputed:
		return "Uncomputed"
	case Unreachable:
		return "Unreachable"
	case Known:
		return "Known"
	}
	return "Status(?)"
}

// Table is a flat memo table over every Pair of an R×C grid.
// Each slot is written at most once per evaluation.
type Table struct {
	rows, cols int
	values     []int64
	status     []Status
}

// Layer holds the states of one step when both walkers' step indices are
// fixed, indexed by the two row coordinates.
type Layer struct {
	rows   int
	values []int64
	status []Status
}

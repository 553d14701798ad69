package grid

import "errors"

var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Move is a single unit step of a walker.
type Move int

const (
	// Right moves one column to the right: (i, j+1).
	Right Move = iota
	// Down moves one row down: (i+1, j).
	Down
	// Left moves one column to the left: (i, j-1).
	Left
	// Up moves one row up: (i-1, j).
	Up
)

// moveOffsets is indexed by Move and holds the (di, dj) delta.
var moveOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// ForwardMoves are the moves of a walker heading to the bottom-right corner.
var ForwardMoves = [2]Move{Right, Down}

// BackwardMoves are the moves of a walker heading to the top-left corner.
var BackwardMoves = [2]Move{Left, Up}

// String returns the move name.
func (m Move) String() string {
	switch m {
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	}
	return "Move(?)"
}

// Offset returns the (di, dj) delta of m.
func (m Move) Offset() (di, dj int) {
	d := moveOffsets[m]
	return d[0], d[1]
}

// Grid is an immutable R×C grid of cells stored row-major.
// Rows and Cols are fixed at construction; cells are never mutated.
type Grid[T comparable] struct {
	Rows, Cols int
	cells      []T
}

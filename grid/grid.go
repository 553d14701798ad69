package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later caller mutations are not observed.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New[T comparable](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]T, 0, rows*cols)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return &Grid[T]{Rows: rows, Cols: cols, cells: cells}, nil
}

// InBounds reports whether (i,j) lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(i, j int) bool {
	return i >= 0 && i < g.Rows && j >= 0 && j < g.Cols
}

// CheckBounds returns ErrOutOfBounds, annotated with the coordinate, when
// (i,j) lies outside the grid.
func (g *Grid[T]) CheckBounds(i, j int) error {
	if !g.InBounds(i, j) {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, i, j, g.Rows, g.Cols)
	}
	return nil
}

// At returns the cell at (i,j). The caller guarantees InBounds(i,j).
// Complexity: O(1).
func (g *Grid[T]) At(i, j int) T {
	return g.cells[g.Index(i, j)]
}

// Index maps (i,j) to a row-major index: i*Cols + j.
// Complexity: O(1).
func (g *Grid[T]) Index(i, j int) int {
	return i*g.Cols + j
}

// Coordinate converts a row-major index back to (i,j).
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) (i, j int) {
	return idx / g.Cols, idx % g.Cols
}

// Step applies m to (i,j) and reports whether the target is inside the grid.
func (g *Grid[T]) Step(i, j int, m Move) (ni, nj int, ok bool) {
	di, dj := m.Offset()
	ni, nj = i+di, j+dj
	return ni, nj, g.InBounds(ni, nj)
}

// Size returns Rows*Cols.
func (g *Grid[T]) Size() int {
	return len(g.cells)
}

// Steps returns the number of moves on any monotone corner-to-corner path,
// (Rows-1)+(Cols-1).
func (g *Grid[T]) Steps() int {
	return g.Rows + g.Cols - 2
}

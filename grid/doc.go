// Package grid holds the immutable rectangular cell grid that both walkers
// of the dualwalk algorithms traverse.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T in a flat row-major slice.
//   - Bounds checks, row-major indexing and the four unit moves
//     (Right, Down, Left, Up) used by forward and backward walkers.
//
// Why:
//
//   - Both the palindromic path counter and the dual collector read the
//     same kind of grid; validation happens once, here.
//
// Complexity:
//
//   - New:      O(R×C) time, O(R×C) memory (deep copy).
//   - At, Step: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package grid

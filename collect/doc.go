// Package collect computes the largest total value two walkers can gather
// while both travel from the top-left to the bottom-right cell of a grid.
//
// What:
//
//   - Both walkers start at (0,0), move only Right or Down, and must finish
//     at (R-1,C-1). Obstacle cells (value -1) cannot be entered.
//   - Every landed-on cell contributes its value; a cell shared by both
//     walkers on the same step is counted once.
//
// How:
//
//	Moving the walkers in lockstep makes "same cell" and "same step"
//	coincide, so the joint state (i1,j1,i2,j2) tells whether the current
//	cell is shared. Each state tries the 2×2 move combinations, keeps the
//	best reachable continuation and adds the current cells. States with no
//	reachable continuation are recorded as unreachable and poison every
//	ancestor that depends only on them.
//
// Modes:
//
//   - Memoized: recursion over an R·C·R·C memo table, at most pairs.MaxSlots.
//   - Rolling:  iterative fill by decreasing step index, two R×R layers.
//
// Complexity:
//
//   - Time:   O(R²·C²) states × 4 transitions.
//   - Memory: O(R²·C²) (Memoized) or O(R²) (Rolling).
//
// Errors:
//
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular: malformed grid.
//   - ErrBadCell: a cell value below Obstacle.
//   - pairs.ErrTooLarge: Memoized mode on a grid above pairs.MaxSlots states.
//   - ErrNoPath: MaxCollectionFrom only; the walkers cannot both reach the end.
//   - ErrOutOfLockstep: MaxCollectionFrom only; walkers at different step counts.
package collect

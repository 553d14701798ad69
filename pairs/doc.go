// Package pairs models the joint state of two walkers on one grid and the
// memo storage used by the dual-walker dynamic programs.
//
// A Pair (i1, j1, i2, j2) is the unit of memoization. Every Pair maps to a
// slot in a Table, a flat row-major array of R·C·R·C entries. Each slot
// carries a Status next to its value so that "not computed yet",
// "unreachable" and "known value" stay three distinct notions and no
// numeric sentinel is stolen from the value range.
//
// Rolling fills only ever need the states of two consecutive steps. When
// both walkers' step indices are fixed, a state is determined by (i1, i2)
// alone, so a Layer stores just R·R entries.
//
// Complexity:
//
//   - NewTable: O(R²·C²) memory.
//   - NewLayer: O(R²) memory.
//   - Lookup / Store / MarkUnreachable: O(1).
package pairs

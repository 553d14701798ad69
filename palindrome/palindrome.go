package palindrome

import (
	"fmt"

	"github.com/katalvlaran/dualwalk/grid"
	"github.com/katalvlaran/dualwalk/pairs"
)

// CountPalindromicPaths returns the number of Right/Down paths from (0,0)
// to (R-1,C-1) whose visited cells form a palindrome, modulo opts.Modulus.
// A nil opts means DefaultOptions().
//
// The corner cells are the first and last characters of every path, so
// the result is 0 whenever they differ.
//
// Errors:
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular — malformed cells.
//   - ErrBadModulus, ErrBadMode                 — invalid options.
//   - pairs.ErrTooLarge                         — Memoized mode with R·C·R·C
//     above pairs.MaxSlots; use Rolling for such grids.
func CountPalindromicPaths[T comparable](cells [][]T, opts *Options) (int64, error) {
	g, o, err := prepare(cells, opts)
	if err != nil {
		return 0, err
	}

	return count(g, pairs.Pair{I1: 0, J1: 0, I2: g.Rows - 1, J2: g.Cols - 1}, o)
}

// CountBetween evaluates a single joint state: walker A at (p.I1,p.J1),
// walker B at (p.I2,p.J2). It returns the number of ways the span between
// them can be completed into a palindrome, given that everything outside
// it already matched. If the two current cells differ the result is 0.
//
// Both walkers must have taken the same number of steps from their own
// corner, i.e. I1+J1 == (R-1-I2)+(C-1-J2); otherwise ErrOutOfLockstep.
// Crossed walkers (I1>I2 or J1>J2) yield 0.
func CountBetween[T comparable](cells [][]T, p pairs.Pair, opts *Options) (int64, error) {
	g, o, err := prepare(cells, opts)
	if err != nil {
		return 0, err
	}
	if err = g.CheckBounds(p.I1, p.J1); err != nil {
		return 0, err
	}
	if err = g.CheckBounds(p.I2, p.J2); err != nil {
		return 0, err
	}
	if !inLockstep(g, p) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfLockstep, p)
	}

	return count(g, p, o)
}

func prepare[T comparable](cells [][]T, opts *Options) (*grid.Grid[T], Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o, err := o.normalize()
	if err != nil {
		return nil, o, err
	}
	g, err := grid.New(cells)
	if err != nil {
		return nil, o, err
	}

	return g, o, nil
}

// inLockstep reports whether A's distance from (0,0) equals B's distance
// from (R-1,C-1).
func inLockstep[T comparable](g *grid.Grid[T], p pairs.Pair) bool {
	return p.I1+p.J1 == (g.Rows-1-p.I2)+(g.Cols-1-p.J2)
}

// crossed reports whether B is no longer below-right of A.
func crossed(p pairs.Pair) bool {
	return p.I1 > p.I2 || p.J1 > p.J2
}

// met reports whether the walkers reached the centre of the path: the same
// cell (odd length) or two adjacent cells (even length).
func met(p pairs.Pair) bool {
	if p.CoLocated() {
		return true
	}
	return (p.I1 == p.I2 && p.J1+1 == p.J2) || (p.J1 == p.J2 && p.I1+1 == p.I2)
}

func count[T comparable](g *grid.Grid[T], p pairs.Pair, o Options) (int64, error) {
	if g.At(p.I1, p.J1) != g.At(p.I2, p.J2) {
		return 0, nil
	}
	if o.Mode == Rolling {
		return rolling(g, p, o.Modulus), nil
	}

	memo, err := pairs.NewTable(g.Rows, g.Cols)
	if err != nil {
		return 0, err
	}
	c := &counter[T]{g: g, memo: memo, mod: o.Modulus}

	return c.travel(p), nil
}

// counter carries the call-local state of one Memoized evaluation.
type counter[T comparable] struct {
	g    *grid.Grid[T]
	memo *pairs.Table
	mod  int64
}

// travel returns the number of palindromic completions from p.
// The cells at p are already known to match.
func (c *counter[T]) travel(p pairs.Pair) int64 {
	if crossed(p) {
		return 0
	}
	if met(p) {
		return 1
	}
	if v, st := c.memo.Lookup(p); st == pairs.Known {
		return v
	}

	var sum int64
	for _, fm := range grid.ForwardMoves {
		a, b, ok := c.g.Step(p.I1, p.J1, fm)
		if !ok {
			continue
		}
		for _, bm := range grid.BackwardMoves {
			x, y, ok := c.g.Step(p.I2, p.J2, bm)
			if !ok || c.g.At(a, b) != c.g.At(x, y) {
				continue
			}
			sum = (sum + c.travel(pairs.Pair{I1: a, J1: b, I2: x, J2: y})) % c.mod
		}
	}
	c.memo.Store(p, sum)

	return sum
}

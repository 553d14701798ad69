package collect

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dualwalk/grid"
	"github.com/katalvlaran/dualwalk/pairs"
)

// MaxCollection returns the maximum total value two walkers collect
// travelling from (0,0) to (R-1,C-1) with Right/Down moves, avoiding
// Obstacle cells and counting a co-located cell once.
// A nil opts means DefaultOptions().
//
// It returns 0 when the start or end cell is an obstacle or when no joint
// route exists. Errors are reserved for malformed input and options, and
// pairs.ErrTooLarge when Memoized mode would need more than
// pairs.MaxSlots states; Rolling has no such limit.
func MaxCollection(cells [][]int, opts *Options) (int64, error) {
	g, o, err := prepare(cells, opts)
	if err != nil {
		return 0, err
	}
	if g.At(0, 0) == Obstacle || g.At(g.Rows-1, g.Cols-1) == Obstacle {
		return 0, nil
	}

	v, err := evaluate(g, pairs.Pair{}, o)
	if errors.Is(err, ErrNoPath) {
		return 0, nil
	}

	return v, err
}

// MaxCollectionFrom returns the best value of the joint state p: the
// cells under both walkers (once if co-located) plus the best collectible
// sum from p to the destination.
//
// The walkers must be in lockstep (I1+J1 == I2+J2). ErrNoPath is returned
// when either walker stands on an obstacle or the destination cannot be
// reached jointly.
func MaxCollectionFrom(cells [][]int, p pairs.Pair, opts *Options) (int64, error) {
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
	if p.I1+p.J1 != p.I2+p.J2 {
		return 0, fmt.Errorf("%w: %v", ErrOutOfLockstep, p)
	}
	if g.At(p.I1, p.J1) == Obstacle || g.At(p.I2, p.J2) == Obstacle {
		return 0, ErrNoPath
	}

	return evaluate(g, p, o)
}

func prepare(cells [][]int, opts *Options) (*grid.Grid[int], Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Mode != Memoized && o.Mode != Rolling {
		return nil, o, ErrBadMode
	}
	g, err := grid.New(cells)
	if err != nil {
		return nil, o, err
	}
	for k := 0; k < g.Size(); k++ {
		i, j := g.Coordinate(k)
		if v := g.At(i, j); v < Obstacle {
			return nil, o, fmt.Errorf("%w: %d at (%d,%d)", ErrBadCell, v, i, j)
		}
	}

	return g, o, nil
}

// evaluate dispatches p to the selected mode. p is in lockstep and neither
// walker stands on an obstacle.
func evaluate(g *grid.Grid[int], p pairs.Pair, o Options) (int64, error) {
	if o.Mode == Rolling {
		return rolling(g, p)
	}

	memo, err := pairs.NewTable(g.Rows, g.Cols)
	if err != nil {
		return 0, err
	}
	c := &collector{g: g, memo: memo}
	v, ok := c.travel(p)
	if !ok {
		return 0, ErrNoPath
	}

	return v, nil
}

// gain is the value of the cells under both walkers, once if shared.
func gain(g *grid.Grid[int], p pairs.Pair) int64 {
	v := int64(g.At(p.I1, p.J1))
	if !p.CoLocated() {
		v += int64(g.At(p.I2, p.J2))
	}
	return v
}

// open reports whether (i,j) is inside the grid and not an obstacle.
func open(g *grid.Grid[int], i, j int, ok bool) bool {
	return ok && g.At(i, j) != Obstacle
}

// collector carries the call-local state of one Memoized evaluation.
type collector struct {
	g    *grid.Grid[int]
	memo *pairs.Table
}

// travel returns the best value of p and whether the destination is
// reachable from it.
func (c *collector) travel(p pairs.Pair) (int64, bool) {
	li, lj := c.g.Rows-1, c.g.Cols-1
	if p.I1 == li && p.J1 == lj && p.I2 == li && p.J2 == lj {
		return int64(c.g.At(li, lj)), true
	}
	switch v, st := c.memo.Lookup(p); st {
	case pairs.Known:
		return v, true
	case pairs.Unreachable:
		return 0, false
	}

	var best int64
	found := false
	for _, m1 := range grid.ForwardMoves {
		a, b, ok := c.g.Step(p.I1, p.J1, m1)
		if !open(c.g, a, b, ok) {
			continue
		}
		for _, m2 := range grid.ForwardMoves {
			x, y, ok := c.g.Step(p.I2, p.J2, m2)
			if !open(c.g, x, y, ok) {
				continue
			}
			if v, ok := c.travel(pairs.Pair{I1: a, J1: b, I2: x, J2: y}); ok && (!found || v > best) {
				best, found = v, true
			}
		}
	}
	if !found {
		c.memo.MarkUnreachable(p)
		return 0, false
	}
	best += gain(c.g, p)
	c.memo.Store(p, best)

	return best, true
}

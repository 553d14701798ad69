package collect

import (
	"github.com/katalvlaran/dualwalk/grid"
	"github.com/katalvlaran/dualwalk/pairs"
)

// rolling evaluates p bottom-up. Both walkers start together, so at step s
// they satisfy i+j == s and a state is keyed by (i1, i2). Steps are filled
// from the destination (s = R+C-2) back to p's step; step s reads only
// step s+1.
func rolling(g *grid.Grid[int], p pairs.Pair) (int64, error) {
	last := g.Steps()
	start := p.I1 + p.J1

	cur, next := pairs.NewLayer(g.Rows), pairs.NewLayer(g.Rows)
	for s := last; s >= start; s-- {
		cur, next = next, cur
		cur.Reset()
		lo, hi := max(0, s-(g.Cols-1)), min(g.Rows-1, s)
		for i1 := lo; i1 <= hi; i1++ {
			for i2 := lo; i2 <= hi; i2++ {
				q := pairs.Pair{I1: i1, J1: s - i1, I2: i2, J2: s - i2}
				if g.At(q.I1, q.J1) == Obstacle || g.At(q.I2, q.J2) == Obstacle {
					cur.MarkUnreachable(i1, i2)
					continue
				}
				if s == last {
					cur.Store(i1, i2, gain(g, q))
					continue
				}
				if best, ok := bestNext(g, next, q); ok {
					cur.Store(i1, i2, best+gain(g, q))
				} else {
					cur.MarkUnreachable(i1, i2)
				}
			}
		}
	}

	v, st := cur.Lookup(p.I1, p.I2)
	if st != pairs.Known {
		return 0, ErrNoPath
	}
	return v, nil
}

// bestNext returns the best Known step s+1 value reachable from q.
func bestNext(g *grid.Grid[int], next *pairs.Layer, q pairs.Pair) (int64, bool) {
	var best int64
	found := false
	for _, m1 := range grid.ForwardMoves {
		a, b, ok := g.Step(q.I1, q.J1, m1)
		if !open(g, a, b, ok) {
			continue
		}
		for _, m2 := range grid.ForwardMoves {
			x, y, ok := g.Step(q.I2, q.J2, m2)
			if !open(g, x, y, ok) {
				continue
			}
			if v, st := next.Lookup(a, x); st == pairs.Known && (!found || v > best) {
				best, found = v, true
			}
		}
	}
	return best, found
}

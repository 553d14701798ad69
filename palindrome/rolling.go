package palindrome

import (
	"github.com/katalvlaran/dualwalk/grid"
	"github.com/katalvlaran/dualwalk/pairs"
)

// rolling evaluates p bottom-up. States are grouped by A's step index s
// (B has then taken s steps too), and a state of step s depends only on
// states of step s+1. Filling starts at the centre step and walks back
// to p's step, keeping two R×R layers indexed by (I1, I2).
//
// Algorithm Outline:
//  1. S = (R-1)+(C-1); mid = S/2.
//  2. Step mid: a non-crossed state has met (co-located or adjacent) → 1,
//     a crossed one → 0.
//  3. For s = mid-1 down to p's step, for every in-bounds (i1, i2):
//     j1 = s-i1, j2 = S-s-i2; crossed → 0, else sum the matching
//     transitions from the step s+1 layer modulo mod.
//  4. Read p from the last filled layer.
func rolling[T comparable](g *grid.Grid[T], p pairs.Pair, mod int64) int64 {
	total := g.Steps()
	mid := total / 2
	start := p.I1 + p.J1
	if start > mid {
		// A is already past the centre: the walkers have crossed.
		return 0
	}

	cur, next := pairs.NewLayer(g.Rows), pairs.NewLayer(g.Rows)
	for s := mid; s >= start; s-- {
		cur, next = next, cur
		cur.Reset()
		back := total - s
		for i1 := rowLow(g, s); i1 <= rowHigh(g, s); i1++ {
			j1 := s - i1
			for i2 := rowLow(g, back); i2 <= rowHigh(g, back); i2++ {
				q := pairs.Pair{I1: i1, J1: j1, I2: i2, J2: back - i2}
				switch {
				case crossed(q):
					cur.Store(i1, i2, 0)
				case s == mid:
					// Lockstep at the centre leaves only met states uncrossed.
					cur.Store(i1, i2, 1)
				default:
					cur.Store(i1, i2, expand(g, next, q, mod))
				}
			}
		}
	}
	v, _ := cur.Lookup(p.I1, p.I2)

	return v
}

// expand sums the step s+1 values reachable from q whose cells match.
func expand[T comparable](g *grid.Grid[T], next *pairs.Layer, q pairs.Pair, mod int64) int64 {
	var sum int64
	for _, fm := range grid.ForwardMoves {
		a, b, ok := g.Step(q.I1, q.J1, fm)
		if !ok {
			continue
		}
		for _, bm := range grid.BackwardMoves {
			x, y, ok := g.Step(q.I2, q.J2, bm)
			if !ok || g.At(a, b) != g.At(x, y) {
				continue
			}
			v, _ := next.Lookup(a, x)
			sum = (sum + v) % mod
		}
	}
	return sum
}

// rowLow and rowHigh bound the rows i with 0 ≤ s-i < C.
func rowLow[T comparable](g *grid.Grid[T], s int) int {
	return max(0, s-(g.Cols-1))
}

func rowHigh[T comparable](g *grid.Grid[T], s int) int {
	return min(g.Rows-1, s)
}

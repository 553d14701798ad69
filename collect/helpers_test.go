package collect_test

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/katalvlaran/dualwalk/collect"
)

// allPaths lists every obstacle-free Right/Down path from (0,0) to the
// bottom-right corner as a sequence of [row, col] cells.
func allPaths(cells [][]int) [][][2]int {
	rows, cols := len(cells), len(cells[0])
	var out [][][2]int
	var cur [][2]int
	var walk func(i, j int)
	walk = func(i, j int) {
		if i >= rows || j >= cols || cells[i][j] == collect.Obstacle {
			return
		}
		cur = append(cur, [2]int{i, j})
		defer func() { cur = cur[:len(cur)-1] }()
		if i == rows-1 && j == cols-1 {
			out = append(out, append([][2]int(nil), cur...))
			return
		}
		walk(i, j+1)
		walk(i+1, j)
	}
	walk(0, 0)

	return out
}

// bruteMax tries every ordered pair of paths.
func bruteMax(cells [][]int) int64 {
	paths := allPaths(cells)
	var best int64
	for _, a := range paths {
		for _, b := range paths {
			sum := lo.Sum(lo.Map(a, func(c [2]int, k int) int64 {
				v := int64(cells[c[0]][c[1]])
				if b[k] != c {
					v += int64(cells[b[k][0]][b[k][1]])
				}
				return v
			}))
			best = max(best, sum)
		}
	}
	return best
}

// randomField builds a rows×cols grid with values in [0,9] and the given
// obstacle probability.
func randomField(rng *rand.Rand, rows, cols int, obstacle float64) [][]int {
	g := make([][]int, rows)
	for i := range g {
		g[i] = make([]int, cols)
		for j := range g[i] {
			if rng.Float64() < obstacle {
				g[i][j] = collect.Obstacle
			} else {
				g[i][j] = rng.Intn(10)
			}
		}
	}
	return g
}

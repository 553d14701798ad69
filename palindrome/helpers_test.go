package palindrome_test

import (
	"math/rand"
	"slices"
)

// bruteCount enumerates every Right/Down path and counts the palindromes.
// Only usable on tiny grids.
func bruteCount[T comparable](cells [][]T) int64 {
	rows, cols := len(cells), len(cells[0])
	path := make([]T, 0, rows+cols-1)
	var n int64
	var walk func(i, j int)
	walk = func(i, j int) {
		path = append(path, cells[i][j])
		defer func() { path = path[:len(path)-1] }()
		if i == rows-1 && j == cols-1 {
			if isPalindrome(path) {
				n++
			}
			return
		}
		if j+1 < cols {
			walk(i, j+1)
		}
		if i+1 < rows {
			walk(i+1, j)
		}
	}
	walk(0, 0)

	return n
}

func isPalindrome[T comparable](s []T) bool {
	r := slices.Clone(s)
	slices.Reverse(r)
	return slices.Equal(s, r)
}

// randomGrid builds a rows×cols grid over the first k letters of the alphabet.
func randomGrid(rng *rand.Rand, rows, cols, k int) [][]byte {
	g := make([][]byte, rows)
	for i := range g {
		g[i] = make([]byte, cols)
		for j := range g[i] {
			g[i][j] = byte('a' + rng.Intn(k))
		}
	}
	return g
}

// rotate180 returns a copy of cells turned upside down and mirrored.
func rotate180[T any](cells [][]T) [][]T {
	rows, cols := len(cells), len(cells[0])
	out := make([][]T, rows)
	for i := range out {
		out[i] = make([]T, cols)
		for j := range out[i] {
			out[i][j] = cells[rows-1-i][cols-1-j]
		}
	}
	return out
}

// transpose returns the cols×rows transpose of cells.
func transpose[T any](cells [][]T) [][]T {
	rows, cols := len(cells), len(cells[0])
	out := make([][]T, cols)
	for j := range out {
		out[j] = make([]T, rows)
		for i := range out[j] {
			out[j][i] = cells[i][j]
		}
	}
	return out
}

// binomialMod returns C(n, k) mod m through Pascal's triangle.
func binomialMod(n, k int, m int64) int64 {
	row := make([]int64, k+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		for j := min(i, k); j > 0; j-- {
			row[j] = (row[j] + row[j-1]) % m
		}
	}
	return row[k]
}

// uniform returns a rows×cols grid with every cell set to c.
func uniform(rows, cols int, c byte) [][]byte {
	g := make([][]byte, rows)
	for i := range g {
		g[i] = make([]byte, cols)
		for j := range g[i] {
			g[i][j] = c
		}
	}
	return g
}

package palindrome_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dualwalk/palindrome"
)

// benchmarkCount runs the counter on an n×n two-letter grid using mode.
func benchmarkCount(b *testing.B, n int, mode palindrome.Mode) {
	cells := randomGrid(rand.New(rand.NewSource(42)), n, n, 2)
	cells[n-1][n-1] = cells[0][0]
	opts := palindrome.DefaultOptions()
	opts.Mode = mode

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := palindrome.CountPalindromicPaths(cells, &opts); err != nil {
			b.Fatalf("CountPalindromicPaths failed: %v", err)
		}
	}
}

// BenchmarkCount_MemoizedSmall benchmarks the recursive mode on 20×20.
func BenchmarkCount_MemoizedSmall(b *testing.B) { benchmarkCount(b, 20, palindrome.Memoized) }

// BenchmarkCount_MemoizedMedium benchmarks the recursive mode on 50×50.
func BenchmarkCount_MemoizedMedium(b *testing.B) { benchmarkCount(b, 50, palindrome.Memoized) }

// BenchmarkCount_RollingSmall benchmarks the layered mode on 20×20.
func BenchmarkCount_RollingSmall(b *testing.B) { benchmarkCount(b, 20, palindrome.Rolling) }

// BenchmarkCount_RollingMedium benchmarks the layered mode on 50×50.
func BenchmarkCount_RollingMedium(b *testing.B) { benchmarkCount(b, 50, palindrome.Rolling) }

// BenchmarkCount_RollingLarge benchmarks the layered mode on 150×150,
// where a full memo table would need ~5·10^8 slots.
func BenchmarkCount_RollingLarge(b *testing.B) { benchmarkCount(b, 150, palindrome.Rolling) }

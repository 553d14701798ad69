// Package dualwalk collects dynamic programs that move two walkers over
// one grid at the same time.
//
// 🚀 What is dualwalk?
//
//	Searching every pair of paths through an R×C grid branches four ways
//	per step. Moving both walkers in lockstep and memoizing on their joint
//	position (i1, j1, i2, j2) turns that into O(R²·C²) states.
//
//		• palindrome — count corner-to-corner paths that read as palindromes
//		  (one walker from each corner, cells must match step by step)
//		• collect    — maximize the value two walkers gather from (0,0) to
//		  (R-1,C-1) around obstacles, sharing co-located cells once
//
// Under the hood:
//
//	grid/       — immutable rectangular Grid[T], bounds and unit moves
//	pairs/      — joint-state Pair, flat memo Table, rolling Layer
//	palindrome/ — PalindromicPathCounter (Memoized or Rolling)
//	collect/    — DualCollectorPathMaximizer (Memoized or Rolling)
//	cmd/dualwalk — evaluates YAML puzzle sets from the command line
//
// Quick ASCII example:
//
//	    1  2  3
//	    4  #  6      two walkers, one around each side of the
//	    7  8  9      obstacle, collect 40
//
//	go get github.com/katalvlaran/dualwalk
package dualwalk

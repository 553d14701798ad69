// Package palindrome counts corner-to-corner grid paths whose sequence of
// visited cells reads the same forwards and backwards.
//
// 🚀 How?
//
//	Instead of enumerating every monotone path (2^(R+C-2) of them), two
//	walkers move at once: A from (0,0) going Right/Down and B from
//	(R-1,C-1) going Left/Up. After k steps each, A holds the k-th cell of
//	the path and B the k-th from the end, so a palindrome just requires
//	their cells to match at every step. The walkers meet in the middle:
//	on one cell for odd-length paths, on two adjacent cells for even ones.
//
//	  a b        A: (0,0) → (0,1) | (1,0)
//	  a a        B: (1,1) → (1,0) | (0,1)
//
// ✨ Key features:
//   - any comparable cell type (byte, rune, string, ...)
//   - counts modulo Options.Modulus (default 1e9+7), int64 accumulation
//   - Memoized mode: top-down recursion over an R·C·R·C memo table
//   - Rolling mode: iterative fill from the centre outwards, two R×R layers,
//     no recursion and O(R²) memory
//   - CountBetween evaluates a single joint state and rejects walkers that
//     are out of lockstep
//
// ⚙️ Usage:
//
//	n, err := palindrome.CountPalindromicPaths([][]byte{
//	  []byte("ab"),
//	  []byte("aa"),
//	}, nil)
//	// n == 2
//
// Performance:
//
//   - Time:   O(R²·C²) states, four transitions each
//   - Memory: O(R²·C²) (Memoized, capped at pairs.MaxSlots) or O(R²) (Rolling)
package palindrome

// Package palindrome defines options, modes and sentinel errors for the
// palindromic path counter.
package palindrome

import "errors"

const (
	// DefaultModulus is the modulus applied to every count unless overridden.
	DefaultModulus int64 = 1_000_000_007

	// MaxModulus is the largest accepted modulus: four residues below it
	// still sum to less than 2^63.
	MaxModulus int64 = 1 << 61
)

var (
	// ErrBadModulus indicates Options.Modulus outside [2, MaxModulus].
	ErrBadModulus = errors.New("palindrome: modulus must be in [2, 2^61]")

	// ErrBadMode indicates an unknown Options.Mode.
	ErrBadMode = errors.New("palindrome: unknown mode")

	// ErrOutOfLockstep indicates the walkers have not taken the same number
	// of steps from their respective corners.
	ErrOutOfLockstep = errors.New("palindrome: walkers are out of lockstep")
)

// Mode selects the evaluation strategy. Both modes return identical counts.
//
//   - Memoized — top-down recursion, memo table of R·C·R·C entries.
//   - Rolling  — bottom-up fill by forward step index, keeping only the
//     current and next step (two R×R layers). No recursion.
type Mode int

const (
	// Memoized evaluates recursively with a full memo table.
	Memoized Mode = iota

	// Rolling evaluates iteratively from the centre outwards.
	Rolling
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Memoized:
		return "memoized"
	case Rolling:
		return "rolling"
	}
	return "unknown"
}

// Options configures the counter.
//
// Fields:
//   - Mode    — Memoized or Rolling.
//   - Modulus — counts are reported modulo this value; 0 means DefaultModulus.
type Options struct {
	Mode    Mode
	Modulus int64
}

// DefaultOptions returns Memoized mode with DefaultModulus.
func DefaultOptions() Options {
	return Options{
		Mode:    Memoized,
		Modulus: DefaultModulus,
	}
}

// normalize fills defaults and validates o.
func (o Options) normalize() (Options, error) {
	if o.Modulus == 0 {
		o.Modulus = DefaultModulus
	}
	if o.Modulus < 2 || o.Modulus > MaxModulus {
		return o, ErrBadModulus
	}
	if o.Mode != Memoized && o.Mode != Rolling {
		return o, ErrBadMode
	}
	return o, nil
}

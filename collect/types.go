package collect

import "errors"

// Obstacle marks a cell that neither walker may enter.
const Obstacle = -1

var (
	// ErrBadCell indicates a cell value below Obstacle.
	ErrBadCell = errors.New("collect: cell values must be >= -1")

	// ErrBadMode indicates an unknown Options.Mode.
	ErrBadMode = errors.New("collect: unknown mode")

	// ErrNoPath indicates no joint route reaches the destination.
	ErrNoPath = errors.New("collect: no joint path to destination")

	// ErrOutOfLockstep indicates the walkers have taken different numbers of steps.
	ErrOutOfLockstep = errors.New("collect: walkers are out of lockstep")
)

// Mode selects the evaluation strategy. Both modes return identical values.
type Mode int

const (
	// Memoized evaluates recursively with a full memo table.
	Memoized Mode = iota

	// Rolling evaluates iteratively by decreasing step index.
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

// Options configures the maximizer.
type Options struct {
	Mode Mode
}

// DefaultOptions returns Memoized mode.
func DefaultOptions() Options {
	return Options{Mode: Memoized}
}

package batch

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dualwalk/collect"
	"github.com/katalvlaran/dualwalk/palindrome"
)

// Options configures a Runner.
type Options struct {
	// Rolling selects the iterative evaluation mode of both solvers.
	Rolling bool
	// Workers bounds how many grids are evaluated at once; values below 1 mean 1.
	Workers int
}

// Result is the outcome of one puzzle.
type Result struct {
	Name  string
	Kind  Kind
	Value int64
	// Err is set when the solver rejected the grid; Value is then 0.
	Err error
}

// Runner evaluates puzzle sets.
type Runner struct {
	logger zerolog.Logger
	opts   Options
}

// NewRunner returns a Runner logging to logger.
func NewRunner(logger zerolog.Logger, opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Runner{
		logger: logger.With().Str("component", "batch").Logger(),
		opts:   opts,
	}
}

type outcome struct {
	value int64
	err   error
}

// Run evaluates every puzzle and returns results in input order. Puzzles
// with identical grids are solved once. Solver errors are reported per
// Result; only context cancellation aborts the run.
func (r *Runner) Run(ctx context.Context, puzzles []Puzzle) ([]Result, error) {
	start := time.Now()
	distinct, owner := distinctGrids(puzzles)
	outcomes := make([]outcome, len(distinct))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	for i, p := range distinct {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t := time.Now()
			v, err := r.solve(p)
			outcomes[i] = outcome{value: v, err: err}
			ev := r.logger.Debug().
				Str("puzzle", p.Name).
				Str("kind", string(p.Kind)).
				Dur("took", time.Since(t))
			if p.Kind == KindCollect {
				ev = ev.Int("obstacles", p.obstacles())
			}
			ev.Err(err).Int64("value", v).Msg("solved")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch run")
	}

	results := lo.Map(puzzles, func(p Puzzle, i int) Result {
		o := outcomes[owner[i]]
		return Result{Name: p.Name, Kind: p.Kind, Value: o.value, Err: o.err}
	})

	r.logger.Info().
		Int("puzzles", len(puzzles)).
		Int("distinct", len(distinct)).
		Int("failed", lo.CountBy(results, func(res Result) bool { return res.Err != nil })).
		Dur("took", time.Since(start)).
		Msg("batch finished")

	return results, nil
}

func (r *Runner) solve(p Puzzle) (int64, error) {
	switch p.Kind {
	case KindPalindrome:
		opts := palindrome.DefaultOptions()
		if r.opts.Rolling {
			opts.Mode = palindrome.Rolling
		}
		return palindrome.CountPalindromicPaths(p.runes(), &opts)
	case KindCollect:
		opts := collect.DefaultOptions()
		if r.opts.Rolling {
			opts.Mode = collect.Rolling
		}
		return collect.MaxCollection(p.Cells, &opts)
	}
	return 0, errors.Wrapf(ErrPuzzle, "%s: unknown kind %q", p.Name, p.Kind)
}

// Command dualwalk evaluates a YAML puzzle set with the palindromic path
// counter and the dual collector, printing one tab-separated line per
// puzzle: name, kind, value.
//
//	dualwalk --puzzles puzzles.yaml --mode rolling --workers 4
//
// Exit status is 0 on success, 1 when a puzzle grid was rejected and 2
// when configuration or the puzzle set could not be loaded.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/dualwalk/internal/batch"
	"github.com/katalvlaran/dualwalk/internal/config"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitSetup    = 2
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, log.Logger)
	stop()
	os.Exit(code)
}

// run loads configuration from args, evaluates the puzzle set and writes
// the results to stdout. It returns the process exit status.
func run(ctx context.Context, args []string, stdout io.Writer, logger zerolog.Logger) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		logger.Error().Err(err).Msg("loading config")
		return exitSetup
	}
	lvl, _ := cfg.Level()
	logger = logger.Level(lvl)
	logger.Debug().Interface("config", cfg).Msg("loaded config")

	puzzles, err := batch.Load(cfg.Puzzles)
	if err != nil {
		logger.Error().Err(err).Msg("loading puzzles")
		return exitSetup
	}

	runner := batch.NewRunner(logger, batch.Options{Rolling: cfg.Rolling(), Workers: cfg.Workers})
	results, err := runner.Run(ctx, puzzles)
	if err != nil {
		logger.Error().Err(err).Msg("running puzzles")
		return exitSetup
	}

	code := exitOK
	for _, res := range results {
		if res.Err != nil {
			code = exitRejected
			logger.Error().Err(res.Err).Str("puzzle", res.Name).Msg("puzzle rejected")
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\t%d\n", res.Name, res.Kind, res.Value)
	}
	return code
}

// Command gridsearch solves grid search problems described in YAML files
// and checks the answers against the expectations recorded with them.
//
//	gridsearch [-log-level debug] [-workers 4] [-render] problems.yaml...
//
// Each file holds a list of problems:
//
//	problems:
//	  - name: corridor
//	    kind: maze
//	    grid: ["#####", "#S.E#", "#####"]
//	    expect: {steps: 2}
//
// Kinds: maze, turns, trails, shortcuts, bytes, regions.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/gridstate/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	zerolog.SetGlobalLevel(cfg.Level)
	logger := zerolog.New(output).Level(cfg.Level).With().Timestamp().Logger()
	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	failed, err := run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error().Err(err).Msg("run aborted")
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridstate/config"
)

// outcome is the result of one problem.
type outcome struct {
	file       string
	problem    Problem
	answer     *Answer
	err        error
	mismatches []string
}

func (o outcome) failed() bool {
	return o.err != nil || len(o.mismatches) > 0
}

// run solves every problem of every file named in cfg, at most cfg.Workers
// at a time, logs each outcome and returns the number of failed problems.
// A file that cannot be read or parsed aborts the run.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (int, error) {
	var outcomes []outcome
	for _, file := range cfg.Problems {
		problems, err := LoadProblems(file)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", file, err)
		}
		for _, p := range problems {
			outcomes = append(outcomes, outcome{file: file, problem: p})
		}
	}
	logger.Info().Int("problems", len(outcomes)).Int("workers", cfg.Workers).Msg("loaded")

	e := env{Logger: logger, Workers: cfg.Workers, Render: cfg.Render}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range outcomes {
		g.Go(func() error {
			o := &outcomes[i]
			o.answer, o.err = Solve(gctx, o.problem, e)
			if o.err == nil {
				o.mismatches = check(o.problem.Expect, o.answer.Values)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	for _, o := range outcomes {
		report(logger, o)
	}
	failed := lo.CountBy(outcomes, outcome.failed)
	logger.Info().Int("solved", len(outcomes)-failed).Int("failed", failed).Msg("done")
	return failed, nil
}

// check compares answers against expectations, in key order.
func check(expect, got map[string]int64) []string {
	keys := lo.Keys(expect)
	slices.Sort(keys)
	var out []string
	for _, k := range keys {
		v, ok := got[k]
		switch {
		case !ok:
			out = append(out, fmt.Sprintf("%s: not produced", k))
		case v != expect[k]:
			out = append(out, fmt.Sprintf("%s: got %d, want %d", k, v, expect[k]))
		}
	}
	return out
}

func report(logger zerolog.Logger, o outcome) {
	base := logger.With().Str("file", o.file).Str("problem", o.problem.Name).Str("kind", o.problem.Kind).Logger()
	if o.err != nil {
		base.Error().Err(o.err).Msg("failed")
		return
	}
	lvl := zerolog.InfoLevel
	if len(o.mismatches) > 0 {
		lvl = zerolog.ErrorLevel
	}
	ev := base.WithLevel(lvl)
	if len(o.mismatches) > 0 {
		ev = ev.Strs("mismatches", o.mismatches)
	}
	ev.Str("fingerprint", fmt.Sprintf("%016x", o.answer.Fingerprint)).
		Fields(lo.MapValues(o.answer.Values, func(v int64, _ string) any { return v })).
		Fields(lo.MapValues(o.answer.Notes, func(v string, _ string) any { return v })).
		Msg("solved")
	if o.answer.Drawing != "" {
		base.Info().Msg(o.answer.Drawing)
	}
}

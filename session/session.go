// Package session answers pitch queries for one lathe configuration.
//
// A Session owns a solver and a small memo of finished rankings keyed by
// the config fingerprint, the search mode and the pitch. Watch mode keeps
// one Session across config reloads, so saving an unchanged file does
// not rerun the search.
package session

import (
	"context"
	"fmt"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lathegears/config"
	"github.com/katalvlaran/lathegears/report"
	"github.com/katalvlaran/lathegears/solver"
)

// DefaultCacheSize bounds the memo when Options.CacheSize is zero.
const DefaultCacheSize = 256

// Options tunes a Session.
type Options struct {
	CacheSize   int
	Parallelism int // overrides config parallelism when > 0
}

// Session runs queries. It is not safe for concurrent use.
type Session struct {
	log   zerolog.Logger
	opts  Options
	cache *lru.Cache[string, []solver.Result]

	cfg    config.Config
	solver *solver.Solver
}

// New returns a Session for cfg. cfg must already be validated.
// Pass zerolog.Nop() to silence it.
func New(cfg config.Config, log zerolog.Logger, opts Options) (*Session, error) {
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, []solver.Result](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("session: create cache: %w", err)
	}
	s := &Session{log: log, opts: opts, cache: cache}
	s.Reconfigure(cfg)

	return s, nil
}

// Reconfigure swaps in a new configuration. Cached rankings for other
// fingerprints stay available.
func (s *Session) Reconfigure(cfg config.Config) {
	par := cfg.Parallelism
	if s.opts.Parallelism > 0 {
		par = s.opts.Parallelism
	}
	s.cfg = cfg
	s.solver = solver.NewSolver(cfg.Solver(),
		solver.WithParallelism(par),
		solver.WithProgress(func(p solver.Progress) {
			ev := s.log.Debug().
				Int("extra", p.ExtraGear).
				Int("k", p.Reductions).
				Int("candidates", p.Candidates).
				Int("ranked", p.Ranked)
			if p.Ranked > 0 {
				ev = ev.Float64("best_pct", p.BestScore)
			}
			ev.Msg("searched")
		}),
	)
}

// SetLogger replaces the session logger.
func (s *Session) SetLogger(log zerolog.Logger) { s.log = log }

// Config returns the active configuration.
func (s *Session) Config() config.Config { return s.cfg }

// Run answers every pitch. Each pitch gets an inventory-only section when
// the inventory holds more than one gear, followed by the plus-one-gear
// section.
func (s *Session) Run(ctx context.Context, pitches []float64) ([]report.Section, error) {
	sections := make([]report.Section, 0, 2*len(pitches))
	for _, pitch := range pitches {
		if len(s.cfg.Gears) > 1 {
			rs, err := s.solve(ctx, report.ModeAvailable, pitch)
			if err != nil {
				return nil, err
			}
			sections = append(sections, report.Section{Mode: report.ModeAvailable, PitchMM: pitch, Results: rs})
		}

		rs, err := s.solve(ctx, report.ModeAvailablePlus, pitch)
		if err != nil {
			return nil, err
		}
		sections = append(sections, report.Section{
			Mode:     report.ModeAvailablePlus,
			PitchMM:  pitch,
			MaxTeeth: s.cfg.MaxTeeth,
			Results:  rs,
		})
	}

	return sections, nil
}

// CacheLen returns the number of memoized rankings.
func (s *Session) CacheLen() int { return s.cache.Len() }

func (s *Session) solve(ctx context.Context, mode report.Mode, pitch float64) ([]solver.Result, error) {
	key := fmt.Sprintf("%s|%s|%g", s.cfg.Fingerprint(), mode, pitch)
	if rs, ok := s.cache.Get(key); ok {
		s.log.Debug().Str("mode", string(mode)).Float64("pitch_mm", pitch).Msg("cache hit")
		return cloneResults(rs), nil
	}

	var (
		start = time.Now()
		rs    []solver.Result
		err   error
	)
	switch mode {
	case report.ModeAvailablePlus:
		rs, err = s.solver.SolveAvailablePlus(ctx, pitch)
	default:
		rs, err = s.solver.SolveAvailable(ctx, pitch)
	}
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("mode", string(mode)).
		Float64("pitch_mm", pitch).
		Int("results", len(rs)).
		Dur("elapsed", time.Since(start)).
		Msg("solved")
	s.cache.Add(key, cloneResults(rs))

	return rs, nil
}

// cloneResults deep-copies rs so cached rankings never share trains with
// what callers receive.
func cloneResults(rs []solver.Result) []solver.Result {
	out := slices.Clone(rs)
	for i := range out {
		out[i].Train = out[i].Train.Clone()
	}

	return out
}

package solver

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/katalvlaran/lathegears/combin"
)

// Solver runs change-gear searches for one Config.
// It holds no state between calls; each query gets its own Collector.
type Solver struct {
	cfg  Config
	opts Options

	progressMu sync.Mutex
}

// NewSolver returns a Solver for cfg. cfg is assumed validated
// (MaxReductions > 0, Lead > 0, ShowBestCount > 0); the gear list is copied.
func NewSolver(cfg Config, opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cfg.AvailableGears = slices.Clone(cfg.AvailableGears)

	return &Solver{cfg: cfg, opts: o}
}

// Config returns a copy of the solver configuration.
func (s *Solver) Config() Config {
	cfg := s.cfg
	cfg.AvailableGears = slices.Clone(s.cfg.AvailableGears)

	return cfg
}

// FindBest offers every train drawn from gears to c, scored against
// desiredRatio.
//
// For each k in 1..MaxReductions it enumerates every 2k-subset of gears
// and every way to seat k of them as drivers. Values of k with 2k >
// len(gears) have no candidates and are skipped.
//
// The context is checked before each k; the enumeration for one k is not
// interruptible.
//
// Complexity: Σ_k C(n,2k)·C(2k,k)·O(k + N).
func (s *Solver) FindBest(ctx context.Context, desiredRatio float64, gears []int, c *Collector) error {
	return s.findBest(ctx, desiredRatio, gears, c, 0)
}

func (s *Solver) findBest(ctx context.Context, desiredRatio float64, gears []int, c *Collector, extra int) error {
	var (
		desiredPitch = PitchFromRatio(s.cfg.Lead, desiredRatio)
		maxK         = min(s.cfg.MaxReductions, len(gears)/2)
		k, i         int
	)

	for k = 1; k <= maxK; k++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrSearchAborted, err)
		}

		var (
			teeth      = make([]int, 2*k)
			candidates int
			r          Result
		)
		for subset := range combin.Combinations(len(gears), 2*k) {
			for i = range subset {
				teeth[i] = gears[subset[i]]
			}
			for driving, driven := range combin.Splits(teeth) {
				candidates++
				r = NewResult(Train{Driving: driving, Driven: driven}, s.cfg.Lead, desiredPitch)
				if !(r.Score() < c.Worst()) {
					continue
				}
				r.Train = r.Train.Clone()
				c.Offer(r)
			}
		}

		p := Progress{
			ExtraGear:  extra,
			Reductions: k,
			Candidates: candidates,
			Ranked:     c.Len(),
			BestScore:  math.Inf(1),
		}
		if p.Ranked > 0 {
			p.BestScore = c.slots[0].Score()
		}
		s.report(p)
	}

	return nil
}

func (s *Solver) report(p Progress) {
	if s.opts.OnProgress == nil {
		return
	}
	s.progressMu.Lock()
	defer s.progressMu.Unlock()
	s.opts.OnProgress(p)
}

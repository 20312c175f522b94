package solver

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SolveAvailable ranks trains built only from the configured inventory
// and returns at most ShowBestCount results, best first.
func (s *Solver) SolveAvailable(ctx context.Context, pitchMM float64) ([]Result, error) {
	c := NewCollector(s.cfg.ShowBestCount)
	if err := s.FindBest(ctx, DesiredRatio(s.cfg.Lead, pitchMM), s.cfg.AvailableGears, c); err != nil {
		return nil, err
	}

	return s.finalize(c, pitchMM), nil
}

// SolveAvailablePlus ranks trains built from the inventory plus one extra
// gear, trying every extra size from MinExtraGearTeeth to MaxGearTeeth.
// All sizes share one ranking, so the result is the global best across
// them. With no sizes to try the result is empty.
//
// With Parallelism > 1 the sizes are searched concurrently, each into its
// own Collector; the rankings are merged in ascending size order, which
// reproduces the sequential result.
func (s *Solver) SolveAvailablePlus(ctx context.Context, pitchMM float64) ([]Result, error) {
	var (
		ratio = DesiredRatio(s.cfg.Lead, pitchMM)
		sizes = s.ExtraGearSizes()
		c     = NewCollector(s.cfg.ShowBestCount)
	)

	if s.opts.Parallelism <= 1 {
		for _, size := range sizes {
			if err := s.findBest(ctx, ratio, s.withExtra(size), c, size); err != nil {
				return nil, err
			}
		}

		return s.finalize(c, pitchMM), nil
	}

	var (
		local = make([]*Collector, len(sizes))
		g, gc = errgroup.WithContext(ctx)
	)
	g.SetLimit(s.opts.Parallelism)
	for i, size := range sizes {
		g.Go(func() error {
			lc := NewCollector(s.cfg.ShowBestCount)
			if err := s.findBest(gc, ratio, s.withExtra(size), lc, size); err != nil {
				return err
			}
			local[i] = lc

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, lc := range local {
		c.Merge(lc)
	}

	return s.finalize(c, pitchMM), nil
}

// ExtraGearSizes returns the extra gear sizes SolveAvailablePlus tries.
func (s *Solver) ExtraGearSizes() []int {
	if s.cfg.MaxGearTeeth < MinExtraGearTeeth {
		return nil
	}
	sizes := make([]int, 0, s.cfg.MaxGearTeeth-MinExtraGearTeeth+1)
	for t := MinExtraGearTeeth; t <= s.cfg.MaxGearTeeth; t++ {
		sizes = append(sizes, t)
	}

	return sizes
}

// withExtra returns a copy of the inventory with size appended.
func (s *Solver) withExtra(size int) []int {
	gears := make([]int, len(s.cfg.AvailableGears), len(s.cfg.AvailableGears)+1)
	copy(gears, s.cfg.AvailableGears)

	return append(gears, size)
}

// finalize re-derives pitch and error metrics from each ranked train.
func (s *Solver) finalize(c *Collector, pitchMM float64) []Result {
	out := c.Results()
	for i := range out {
		out[i] = NewResult(out[i].Train, s.cfg.Lead, pitchMM)
	}

	return out
}

package solver_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lathegears/solver"
)

func benchConfig() solver.Config {
	return solver.Config{
		AvailableGears: []int{20, 24, 30, 35, 40, 45, 50, 55, 60, 65, 80, 127},
		MaxReductions:  2,
		MaxGearTeeth:   60,
		Lead:           8,
		ShowBestCount:  10,
	}
}

// BenchmarkSolveAvailable_12x2 ranks every two-stage train from twelve gears.
func BenchmarkSolveAvailable_12x2(b *testing.B) {
	s := solver.NewSolver(benchConfig())
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.SolveAvailable(ctx, 1.25); err != nil {
			b.Fatalf("solve: %v", err)
		}
	}
}

// BenchmarkSolveAvailablePlus_Sequential tries 45 extra gear sizes in one goroutine.
func BenchmarkSolveAvailablePlus_Sequential(b *testing.B) {
	s := solver.NewSolver(benchConfig())
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.SolveAvailablePlus(ctx, 1.25); err != nil {
			b.Fatalf("solve: %v", err)
		}
	}
}

// BenchmarkSolveAvailablePlus_Parallel4 spreads the extra sizes over four workers.
func BenchmarkSolveAvailablePlus_Parallel4(b *testing.B) {
	s := solver.NewSolver(benchConfig(), solver.WithParallelism(4))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.SolveAvailablePlus(ctx, 1.25); err != nil {
			b.Fatalf("solve: %v", err)
		}
	}
}

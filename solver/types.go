package solver

import (
	"errors"
	"slices"
)

// MinExtraGearTeeth is the smallest extra gear tried by SolveAvailablePlus.
// Smaller gears are not practical on a change-gear banjo.
const MinExtraGearTeeth = 16

// MMPerInch converts between inch and metric units.
const MMPerInch = 25.4

// SentinelScore marks an empty Collector slot. It is larger than any real
// percent error.
const SentinelScore = 1e300

// Sentinel errors. The first two are used as panic values for internal
// contract violations; ErrSearchAborted wraps context cancellation.
var (
	// ErrTrainLengthMismatch indicates driving and driven gear lists of different length.
	ErrTrainLengthMismatch = errors.New("solver: driving and driven gear counts differ")

	// ErrBadCapacity indicates a Collector capacity of zero or less.
	ErrBadCapacity = errors.New("solver: collector capacity must be positive")

	// ErrBadParallelism indicates a negative worker count.
	ErrBadParallelism = errors.New("solver: parallelism must be non-negative")

	// ErrSearchAborted is returned when the context ends before the search does.
	ErrSearchAborted = errors.New("solver: search aborted")
)

// Config holds the solver inputs that stay fixed for a Solver's lifetime.
//
// AvailableGears – tooth counts on hand, in any order, duplicates allowed.
// MaxReductions  – maximum driver/driven pairs in series (> 0).
// MaxGearTeeth   – largest extra gear tried by SolveAvailablePlus.
// Lead           – leadscrew, revolutions per inch (> 0).
// ShowBestCount  – number of ranked trains to keep (> 0).
type Config struct {
	AvailableGears []int
	MaxReductions  int
	MaxGearTeeth   int
	Lead           float64
	ShowBestCount  int
}

// Train is one gear train: Driving[i] meshes with Driven[i] in stage i.
type Train struct {
	Driving []int
	Driven  []int
}

// Stages returns the number of reduction stages in t.
func (t Train) Stages() int { return len(t.Driving) }

// Clone returns a deep copy of t.
func (t Train) Clone() Train {
	return Train{Driving: slices.Clone(t.Driving), Driven: slices.Clone(t.Driven)}
}

// Equal reports whether t and o use the same driving gears and the same
// driven gears, regardless of stage order.
func (t Train) Equal(o Train) bool {
	return sameMultiset(t.Driving, o.Driving) && sameMultiset(t.Driven, o.Driven)
}

func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if slices.Equal(a, b) {
		return true
	}
	as, bs := slices.Clone(a), slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)

	return slices.Equal(as, bs)
}

// Result is a train together with the pitch it cuts and its error
// against the requested pitch. All error fields derive from
// ErrorMMPerThread.
type Result struct {
	Train

	ActualPitchMM      float64 // [mm/thread]
	ErrorMMPerThread   float64 // [mm/thread], actual minus desired
	ErrorPercent       float64 // [%] of the desired pitch
	ErrorInchPerThread float64 // [in/thread]
	ErrorInchPerFoot   float64 // [in/ft] of thread length
}

// Score is the ranking key: the absolute percent pitch error. Lower is better.
func (r Result) Score() float64 {
	if r.ErrorPercent < 0 {
		return -r.ErrorPercent
	}

	return r.ErrorPercent
}

// Progress describes one finished outer search iteration.
//
// ExtraGear is zero for the inventory-only pass. Ranked is the number of
// occupied Collector slots; while it is zero BestScore is +Inf.
type Progress struct {
	ExtraGear  int
	Reductions int
	Candidates int
	Ranked     int
	BestScore  float64
}

// Options tunes a Solver.
//
// Parallelism – workers used by SolveAvailablePlus; 0 or 1 runs sequentially.
// OnProgress  – optional callback after each outer iteration. Calls are
// serialized by the Solver.
type Options struct {
	Parallelism int
	OnProgress  func(Progress)
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithParallelism sets how many extra-gear sizes SolveAvailablePlus
// searches at once. Negative values panic with ErrBadParallelism.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadParallelism)
		}
		o.Parallelism = n
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn func(Progress)) Option {
	return func(o *Options) {
		o.OnProgress = fn
	}
}

// DefaultOptions returns sequential search without progress reporting.
func DefaultOptions() Options {
	return Options{Parallelism: 1}
}

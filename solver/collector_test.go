package solver_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/lathegears/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(pct float64, driving, driven int) solver.Result {
	return solver.Result{
		Train:        solver.Train{Driving: []int{driving}, Driven: []int{driven}},
		ErrorPercent: pct,
	}
}

func scores(rs []solver.Result) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.Score()
	}

	return out
}

// TestCollector_Empty starts with sentinel slots only.
func TestCollector_Empty(t *testing.T) {
	c := solver.NewCollector(3)
	assert.Equal(t, 3, c.Cap())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Results())
	assert.Equal(t, solver.SentinelScore, c.Worst())
}

// TestCollector_BadCapacity panics on non-positive sizes.
func TestCollector_BadCapacity(t *testing.T) {
	assert.PanicsWithValue(t, solver.ErrBadCapacity, func() { solver.NewCollector(0) })
	assert.PanicsWithValue(t, solver.ErrBadCapacity, func() { solver.NewCollector(-2) })
}

// TestCollector_SortedAndBounded offers shuffled results and checks the
// final order and capacity.
func TestCollector_SortedAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	all := make([]solver.Result, 50)
	for i := range all {
		// Alternate signs: ranking uses the magnitude.
		pct := rng.Float64() * 10
		if i%2 == 1 {
			pct = -pct
		}
		all[i] = scored(pct, 20+i, 40+i)
	}

	c := solver.NewCollector(5)
	for _, r := range all {
		c.Offer(r)
		require.LessOrEqual(t, c.Len(), 5)
	}

	got := scores(c.Results())
	require.Len(t, got, 5)
	assert.True(t, sort.Float64sAreSorted(got))

	want := scores(all)
	sort.Float64s(want)
	assert.Equal(t, want[:5], got)
}

// TestCollector_TiesKeepFirst places equal scores after earlier ones.
func TestCollector_TiesKeepFirst(t *testing.T) {
	c := solver.NewCollector(2)
	require.True(t, c.Offer(scored(1.0, 20, 40)))
	require.True(t, c.Offer(scored(1.0, 30, 60)))
	// Same score as the worst slot: not strictly better, dropped.
	require.False(t, c.Offer(scored(-1.0, 50, 100)))

	rs := c.Results()
	require.Len(t, rs, 2)
	assert.Equal(t, []int{20}, rs[0].Driving)
	assert.Equal(t, []int{30}, rs[1].Driving)
}

// TestCollector_Duplicates rejects an identical train with identical
// score, both when partially filled and when full.
func TestCollector_Duplicates(t *testing.T) {
	c := solver.NewCollector(3)
	require.True(t, c.Offer(scored(0.5, 20, 40)))
	assert.False(t, c.Offer(scored(0.5, 20, 40)))
	assert.Equal(t, 1, c.Len())

	require.True(t, c.Offer(scored(0.7, 30, 40)))
	require.True(t, c.Offer(scored(0.9, 30, 50)))
	assert.False(t, c.Offer(scored(0.7, 30, 40)))
	assert.Equal(t, 3, c.Len())

	// Same train, different score: not a duplicate.
	assert.True(t, c.Offer(scored(0.1, 20, 40)))
	assert.Equal(t, []float64{0.1, 0.5, 0.7}, scores(c.Results()))
}

// TestCollector_Eviction drops the worst slot when a better result arrives.
func TestCollector_Eviction(t *testing.T) {
	c := solver.NewCollector(2)
	c.Offer(scored(3, 20, 40))
	c.Offer(scored(2, 20, 50))
	assert.Equal(t, 3.0, c.Worst())

	assert.False(t, c.Offer(scored(4, 20, 60)))
	assert.True(t, c.Offer(scored(1, 20, 70)))
	assert.Equal(t, []float64{1, 2}, scores(c.Results()))
}

// TestCollector_Merge combines two rankings.
func TestCollector_Merge(t *testing.T) {
	a := solver.NewCollector(3)
	a.Offer(scored(1, 20, 40))
	a.Offer(scored(4, 20, 50))

	b := solver.NewCollector(3)
	b.Offer(scored(2, 30, 40))
	b.Offer(scored(1, 20, 40)) // duplicate of a's best

	a.Merge(b)
	assert.Equal(t, []float64{1, 2, 4}, scores(a.Results()))
}

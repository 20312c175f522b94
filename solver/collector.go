package solver

// Collector keeps the best N results seen so far, sorted by ascending
// Score. Empty slots hold a sentinel scored SentinelScore.
//
// Invariants:
//   - len(slots) == N at all times.
//   - slots is sorted by Score; equal scores keep insertion order.
//   - No two occupied slots hold equal trains with equal scores.
//
// A Collector is not safe for concurrent use.
type Collector struct {
	slots []Result
}

// NewCollector returns a Collector with capacity n, every slot empty.
// n ≤ 0 panics with ErrBadCapacity.
func NewCollector(n int) *Collector {
	if n <= 0 {
		panic(ErrBadCapacity)
	}
	c := &Collector{slots: make([]Result, n)}
	for i := range c.slots {
		c.slots[i] = Result{ErrorPercent: SentinelScore}
	}

	return c
}

// Cap returns the capacity N.
func (c *Collector) Cap() int { return len(c.slots) }

// Worst returns the score a new result has to beat to enter the ranking.
func (c *Collector) Worst() float64 { return c.slots[len(c.slots)-1].Score() }

// Len returns the number of occupied slots.
func (c *Collector) Len() int {
	var n int
	for i := range c.slots {
		if c.slots[i].Score() < SentinelScore {
			n++
		}
	}

	return n
}

// Offer ranks r. It returns true if r entered the list.
//
// r is dropped when an occupied slot already holds an equal train with
// the same score, or when r does not beat the current worst slot.
// Otherwise r is placed after every slot with a score ≤ its own and the
// last slot is evicted. Offer keeps r's slices; callers reusing buffers
// must pass a cloned train.
//
// Complexity: O(N·k).
func (c *Collector) Offer(r Result) bool {
	score := r.Score()
	// NaN never ranks.
	if !(score < c.Worst()) {
		return false
	}

	var (
		pos = -1
		i   int
		s   float64
	)
	for i = range c.slots {
		s = c.slots[i].Score()
		if s >= SentinelScore {
			break
		}
		if s == score && c.slots[i].Train.Equal(r.Train) {
			return false
		}
		if pos < 0 && s > score {
			pos = i
		}
	}
	if pos < 0 {
		pos = i
	}

	copy(c.slots[pos+1:], c.slots[pos:len(c.slots)-1])
	c.slots[pos] = r

	return true
}

// Merge offers every occupied slot of other, best first.
func (c *Collector) Merge(other *Collector) {
	for _, r := range other.Results() {
		c.Offer(r)
	}
}

// Results returns the occupied slots, best first. The slice is a copy;
// the trains are shared with the Collector.
func (c *Collector) Results() []Result {
	out := make([]Result, 0, len(c.slots))
	for _, r := range c.slots {
		if r.Score() >= SentinelScore {
			break
		}
		out = append(out, r)
	}

	return out
}

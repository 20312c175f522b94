package combin

import "iter"

// Splits returns a lazy sequence of every way to divide set into two
// halves of equal size. The first yielded slice holds the elements at the
// chosen positions, the second holds the rest, both in the order they
// appear in set.
//
// Splits are ordered lexicographically by the chosen positions, so the
// first split always takes the leading half of set.
//
// Contracts:
//   - len(set) must be even, otherwise Splits panics with ErrOddSplit.
//   - An empty set yields one split of two empty halves.
//   - Both yielded slices are reused between iterations.
//
// Complexity: O(C(2h,h)·2h) time, O(2h) memory where 2h = len(set).
func Splits(set []int) iter.Seq2[[]int, []int] {
	if len(set)%2 != 0 {
		panic(ErrOddSplit)
	}
	var (
		n    = len(set)
		half = n / 2
	)

	return func(yield func([]int, []int) bool) {
		var (
			first  = make([]int, half)
			second = make([]int, half)
			all    = make([]int, n)
			rest   = make([]int, 0, n)
			i      int
		)
		for i = range all {
			all[i] = i
		}
		for positions := range Combinations(n, half) {
			rest = appendRemaining(rest[:0], all, positions)
			for i = range positions {
				first[i] = set[positions[i]]
				second[i] = set[rest[i]]
			}
			if !yield(first, second) {
				return
			}
		}
	}
}

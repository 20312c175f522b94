package combin

import "iter"

// Binomial returns C(n, k), the number of k-element subsets of an n-element
// set. It returns 0 when k < 0 or k > n.
//
// The multiplicative form keeps every intermediate value an exact integer:
// after step i the accumulator equals C(n-k+i, i).
//
// Complexity: O(min(k, n-k)).
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	var (
		c = 1
		i int
	)
	for i = 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}

	return c
}

// Combinations returns a lazy sequence of every ascending subset of
// {0..base-1} of size length, in lexicographic order.
//
// Contracts:
//   - 0 ≤ length ≤ base, otherwise Combinations panics (see types.go).
//   - length == 0 yields exactly one empty subset.
//   - The yielded slice is reused between iterations.
//
// Complexity: O(C(base,length)·length) time, O(length) memory.
func Combinations(base, length int) iter.Seq[[]int] {
	checkArgs(base, length)

	return func(yield func([]int) bool) {
		idx := make([]int, length)
		var i int
		for i = range idx {
			idx[i] = i
		}

		for {
			if !yield(idx) {
				return
			}
			// Find the rightmost position that can still move right.
			i = length - 1
			for i >= 0 && idx[i] == base-length+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < length; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Remaining returns the elements of full that are not in taken. Both
// inputs must be sorted ascending; the result is sorted too.
//
// Complexity: O(len(full)+len(taken)).
func Remaining(full, taken []int) []int {
	return appendRemaining(make([]int, 0, len(full)), full, taken)
}

// appendRemaining is Remaining writing into out.
func appendRemaining(out, full, taken []int) []int {
	var i, j int
	for i < len(full) {
		switch {
		case j >= len(taken) || full[i] < taken[j]:
			out = append(out, full[i])
			i++
		case full[i] == taken[j]:
			i++
			j++
		default:
			j++
		}
	}

	return out
}

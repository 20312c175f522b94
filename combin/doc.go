// Package combin enumerates index subsets and balanced two-way splits of
// small index sets.
//
// 🚀 What is it for?
//
//	Change-gear search tries every way to pick 2k gears out of an inventory
//	and then every way to seat k of them as drivers and k as driven gears.
//	Both steps are plain k-combinations:
//	  • Combinations(n, k) — all ascending k-subsets of {0..n-1}
//	  • Splits(set)        — all ways to halve an even-sized set
//
// ✨ Guarantees:
//   - Lexicographic order of the ascending index sequences, fixed across runs.
//   - Exact counts: Binomial uses integer arithmetic only.
//   - Lazy: iterators allocate one buffer and reuse it for every yield.
//   - Restartable: ranging over the same sequence twice replays it from the start.
//
// Contracts:
//
//	Arguments that break the combinatorial preconditions (k > n, negative
//	sizes, odd-sized splits) are programming errors. They panic with one of
//	the sentinel errors from types.go instead of returning an error.
//
// ⚙️ Usage:
//
//	for subset := range combin.Combinations(7, 2) {
//	    for driving, driven := range combin.Splits(subset) {
//	        // driving and driven are reused; copy them to keep them.
//	    }
//	}
//
// Complexity:
//
//   - Combinations: O(C(n,k)·k) time, O(k) memory.
//   - Splits:       O(C(2h,h)·2h) time, O(2h) memory for a set of size 2h.
package combin

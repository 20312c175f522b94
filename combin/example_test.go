package combin_test

import (
	"fmt"

	"github.com/katalvlaran/lathegears/combin"
)

// ExampleCombinations lists every pair drawn from four gears.
func ExampleCombinations() {
	for c := range combin.Combinations(4, 2) {
		fmt.Println(c)
	}
	// Output:
	// [0 1]
	// [0 2]
	// [0 3]
	// [1 2]
	// [1 3]
	// [2 3]
}

// ExampleSplits seats two of four gears as drivers in every possible way.
func ExampleSplits() {
	for driving, driven := range combin.Splits([]int{20, 40, 60, 80}) {
		fmt.Println(driving, driven)
	}
	// Output:
	// [20 40] [60 80]
	// [20 60] [40 80]
	// [20 80] [40 60]
	// [40 60] [20 80]
	// [40 80] [20 60]
	// [60 80] [20 40]
}

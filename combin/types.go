package combin

import "errors"

// Sentinel errors used as panic values when a precondition is violated.
var (
	// ErrNegativeArgument indicates a negative base or subset length.
	ErrNegativeArgument = errors.New("combin: negative base or length")

	// ErrLengthExceedsBase indicates a subset length larger than the base set.
	ErrLengthExceedsBase = errors.New("combin: length exceeds base")

	// ErrOddSplit indicates a split request for a set of odd size.
	ErrOddSplit = errors.New("combin: set size must be even to split in halves")
)

// checkArgs panics with a sentinel when (base, length) is not a valid
// k-combination request.
func checkArgs(base, length int) {
	if base < 0 || length < 0 {
		panic(ErrNegativeArgument)
	}
	if length > base {
		panic(ErrLengthExceedsBase)
	}
}

package solver

// ActualRatio returns product(driven)/product(driving).
//
// Contract: len(driving) == len(driven); a mismatch is a wiring bug and
// panics with ErrTrainLengthMismatch.
//
// Complexity: O(k).
func ActualRatio(driving, driven []int) float64 {
	if len(driving) != len(driven) {
		panic(ErrTrainLengthMismatch)
	}

	ratio := 1.0
	for _, g := range driven {
		ratio *= float64(g)
	}
	for _, g := range driving {
		ratio /= float64(g)
	}

	return ratio
}

// DesiredRatio returns the train ratio that cuts pitchMM on a lathe whose
// leadscrew has lead revolutions per inch. Larger ratios cut finer threads.
func DesiredRatio(lead, pitchMM float64) float64 {
	return MMPerInch / lead / pitchMM
}

// PitchFromRatio returns the pitch in mm cut by a train of the given ratio.
func PitchFromRatio(lead, ratio float64) float64 {
	return MMPerInch / lead / ratio
}

// NewResult evaluates t against desiredPitchMM and fills every error metric.
// The train slices are stored as given, not copied.
func NewResult(t Train, lead, desiredPitchMM float64) Result {
	r := Result{
		Train:         t,
		ActualPitchMM: PitchFromRatio(lead, ActualRatio(t.Driving, t.Driven)),
	}
	r.ErrorMMPerThread = r.ActualPitchMM - desiredPitchMM
	r.ErrorPercent = r.ErrorMMPerThread / desiredPitchMM * 100.0
	r.ErrorInchPerThread = r.ErrorMMPerThread / MMPerInch
	r.ErrorInchPerFoot = r.ErrorInchPerThread / (desiredPitchMM / MMPerInch) * 12.0

	return r
}

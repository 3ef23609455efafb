package units

import "errors"

var (
	// ErrZeroDenominator is raised when a Ratio is built with a zero
	// denominator.
	ErrZeroDenominator = errors.New("units: zero denominator")

	// ErrScaleOverflow is raised when combining two scale ratios produces a
	// numerator or denominator that does not fit in an int64, even after
	// cross-reduction.
	ErrScaleOverflow = errors.New("units: scale ratio overflows int64")
)

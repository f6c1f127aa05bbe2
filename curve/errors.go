package curve

import "errors"

var (
	// ErrEmptyInput is returned when no zero rate observations are supplied.
	ErrEmptyInput = errors.New("no zero rate observations supplied")

	// ErrLengthMismatch is returned when the date and rate sequences differ in length.
	ErrLengthMismatch = errors.New("dates and rates are not the same length")

	// ErrUnknownConvention is returned for a frequency, day count, or
	// interpolation selector outside the recognized set.
	ErrUnknownConvention = errors.New("unknown convention")

	// ErrNonMonotonicTime is returned when the derived year fractions are not
	// strictly increasing from the valuation date.
	ErrNonMonotonicTime = errors.New("times are not strictly increasing")

	// ErrInvalidTime is returned when a curve is queried at a negative time.
	ErrInvalidTime = errors.New("negative query time")
)

package curve

import (
	"math"
)

// FrequencyType is the compounding convention under which a zero rate is quoted.
type FrequencyType string

const (
	FreqContinuous FrequencyType = "CONTINUOUS"
	FreqSimple     FrequencyType = "SIMPLE"
	FreqAnnual     FrequencyType = "ANNUAL"
	FreqSemiAnnual FrequencyType = "SEMIANNUAL"
	FreqQuarterly  FrequencyType = "QUARTERLY"
	FreqMonthly    FrequencyType = "MONTHLY"
)

// IsValid reports whether f is a recognized compounding convention.
func (f FrequencyType) IsValid() bool {
	switch f {
	case FreqContinuous, FreqSimple, FreqAnnual, FreqSemiAnnual, FreqQuarterly, FreqMonthly:
		return true
	}
	return false
}

// periodsPerYear returns the number of compounding periods per year.
// Only meaningful for the periodic conventions.
func (f FrequencyType) periodsPerYear() float64 {
	switch f {
	case FreqAnnual:
		return 1
	case FreqSemiAnnual:
		return 2
	case FreqQuarterly:
		return 4
	case FreqMonthly:
		return 12
	default:
		return 0
	}
}

// DayCountType selects the convention used to turn date pairs into year fractions.
//
// The values match the convention strings accepted by utils.YearFraction.
type DayCountType string

const (
	DayCountActAct     DayCountType = "ACT/ACT"
	DayCountAct360     DayCountType = "ACT/360"
	DayCountAct365F    DayCountType = "ACT/365F"
	DayCountThirty360  DayCountType = "30/360"
	DayCountThirtyE360 DayCountType = "30E/360"
)

// IsValid reports whether d is a recognized day count convention.
func (d DayCountType) IsValid() bool {
	switch d {
	case DayCountActAct, DayCountAct360, DayCountAct365F, DayCountThirty360, DayCountThirtyE360:
		return true
	}
	return false
}

// tSmall floors query times when inverting a discount factor to a rate,
// since the zero rate at t=0 is indeterminate (DF is 1 for any rate).
const tSmall = 1e-10

// ZeroToDF converts an annualized zero rate at time t (in years) into a
// discount factor under the given compounding convention.
//
// At t <= 0 the discount factor is 1 by definition, regardless of rate.
// The frequency must already be validated by the caller.
func ZeroToDF(rate, t float64, freq FrequencyType) float64 {
	if t <= 0 {
		return 1.0
	}
	switch freq {
	case FreqContinuous:
		return math.Exp(-rate * t)
	case FreqSimple:
		return 1.0 / (1.0 + rate*t)
	default:
		n := freq.periodsPerYear()
		return math.Pow(1.0+rate/n, -n*t)
	}
}

// DFToZero is the inverse of ZeroToDF: it recovers the annualized zero rate
// implied by a discount factor at time t under the given compounding convention.
func DFToZero(df, t float64, freq FrequencyType) float64 {
	if t < tSmall {
		t = tSmall
	}
	switch freq {
	case FreqContinuous:
		return -math.Log(df) / t
	case FreqSimple:
		return (1.0/df - 1.0) / t
	default:
		n := freq.periodsPerYear()
		return n * (math.Pow(df, -1.0/(n*t)) - 1.0)
	}
}

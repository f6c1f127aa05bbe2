package curve

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/meenmo/zerocurve/utils"
)

// DiscountCurve is the read-only curve capability consumed by pricers.
//
// Times are year fractions from the curve's valuation date. Queries never
// mutate the curve, so a single curve may be shared across goroutines.
type DiscountCurve interface {
	// DF returns the discount factor at time t >= 0.
	DF(t float64) (float64, error)
	// ZeroRate returns the annualized zero rate implied by DF(t) under the
	// curve's own compounding convention.
	ZeroRate(t float64) (float64, error)
	// Bump returns a new independent curve with every discount factor
	// attenuated by exp(-shift*t), a parallel shift of the continuously
	// compounded zero curve.
	Bump(shift float64) DiscountCurve
}

// PointCurve is a discount curve defined directly by (time, discount factor)
// pillars. It is the base curve type: Bump returns one, and ZeroRateCurve
// builds on it.
type PointCurve struct {
	valuationDate time.Time
	frequencyType FrequencyType
	dayCountType  DayCountType
	interpMethod  InterpMethod
	times         []float64
	dfs           []float64
}

var (
	_ DiscountCurve = (*PointCurve)(nil)
	_ DiscountCurve = (*ZeroRateCurve)(nil)
)

// NewPointCurve creates a curve from parallel time and discount factor
// slices. Times must be non-negative and strictly increasing. The slices are
// copied; the caller keeps ownership of its arguments.
func NewPointCurve(valuationDate time.Time, times, dfs []float64, freq FrequencyType, dayCount DayCountType, interp InterpMethod) (*PointCurve, error) {
	if len(times) == 0 {
		return nil, ErrEmptyInput
	}
	if len(times) != len(dfs) {
		return nil, fmt.Errorf("%w: %d times vs %d discount factors", ErrLengthMismatch, len(times), len(dfs))
	}
	if err := checkConventions(freq, dayCount, interp); err != nil {
		return nil, err
	}
	if err := checkMonotonic(times); err != nil {
		return nil, err
	}
	c := &PointCurve{
		valuationDate: valuationDate,
		frequencyType: freq,
		dayCountType:  dayCount,
		interpMethod:  interp,
		times:         append([]float64(nil), times...),
		dfs:           append([]float64(nil), dfs...),
	}
	return c, nil
}

func checkConventions(freq FrequencyType, dayCount DayCountType, interp InterpMethod) error {
	if !freq.IsValid() {
		return fmt.Errorf("%w: frequency %q", ErrUnknownConvention, freq)
	}
	if !dayCount.IsValid() {
		return fmt.Errorf("%w: day count %q", ErrUnknownConvention, dayCount)
	}
	if !interp.IsValid() {
		return fmt.Errorf("%w: interpolation method %q", ErrUnknownConvention, interp)
	}
	return nil
}

func checkMonotonic(times []float64) error {
	if times[0] < 0 {
		return fmt.Errorf("%w: first observation precedes the valuation date (t=%g)", ErrNonMonotonicTime, times[0])
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return fmt.Errorf("%w: t[%d]=%g does not exceed t[%d]=%g", ErrNonMonotonicTime, i, times[i], i-1, times[i-1])
		}
	}
	return nil
}

// DF returns the discount factor at time t.
//
// t = 0 returns exactly 1. Between pillars the configured interpolation
// method applies; beyond the last pillar its extrapolation policy applies.
func (c *PointCurve) DF(t float64) (float64, error) {
	if t < 0 {
		return 0, fmt.Errorf("%w: t=%g", ErrInvalidTime, t)
	}
	if t == 0 {
		return 1.0, nil
	}
	return interpolateDF(t, c.times, c.dfs, c.interpMethod), nil
}

// ZeroRate returns the zero rate implied by DF(t) under the curve's
// compounding convention. It is the exact inverse of the rate-to-DF
// conversion used at construction.
func (c *PointCurve) ZeroRate(t float64) (float64, error) {
	df, err := c.DF(t)
	if err != nil {
		return 0, err
	}
	return DFToZero(df, t, c.frequencyType), nil
}

// Bump returns a new curve whose discount factors are the receiver's
// multiplied by exp(-shift*t). The pillar slices are deep-copied, so the
// source curve is never touched; bump(0) reproduces the source exactly.
func (c *PointCurve) Bump(shift float64) DiscountCurve {
	times := append([]float64(nil), c.times...)
	dfs := append([]float64(nil), c.dfs...)
	for i := range dfs {
		dfs[i] *= math.Exp(-shift * times[i])
	}
	return &PointCurve{
		valuationDate: c.valuationDate,
		frequencyType: c.frequencyType,
		dayCountType:  c.dayCountType,
		interpMethod:  c.interpMethod,
		times:         times,
		dfs:           dfs,
	}
}

// DFOn returns the discount factor on a calendar date, converting it to a
// year fraction under the curve's own day count.
func (c *PointCurve) DFOn(date time.Time) (float64, error) {
	return c.DF(utils.YearFraction(c.valuationDate, date, string(c.dayCountType)))
}

// ZeroRateOn returns the zero rate on a calendar date under the curve's own
// day count and compounding convention.
func (c *PointCurve) ZeroRateOn(date time.Time) (float64, error) {
	return c.ZeroRate(utils.YearFraction(c.valuationDate, date, string(c.dayCountType)))
}

// ValuationDate returns the curve's time-zero anchor date.
func (c *PointCurve) ValuationDate() time.Time {
	return c.valuationDate
}

// Frequency returns the compounding convention of the curve's zero rates.
func (c *PointCurve) Frequency() FrequencyType {
	return c.frequencyType
}

// DayCount returns the curve's day count convention.
func (c *PointCurve) DayCount() DayCountType {
	return c.dayCountType
}

// Interp returns the curve's interpolation method.
func (c *PointCurve) Interp() InterpMethod {
	return c.interpMethod
}

// Times returns a copy of the curve's pillar times.
func (c *PointCurve) Times() []float64 {
	return append([]float64(nil), c.times...)
}

// DiscountFactors returns a copy of the curve's pillar discount factors.
func (c *PointCurve) DiscountFactors() []float64 {
	return append([]float64(nil), c.dfs...)
}

// ZeroRateCurve is a discount curve built from calendar dates and the zero
// rates observed on them. Dates are converted to year fractions under the
// day count convention and rates to discount factors under the compounding
// convention; the original observations are retained for diagnostics only.
type ZeroRateCurve struct {
	PointCurve
	zeroDates []time.Time
	zeroRates []float64
}

// NewZeroRateCurve builds a validated curve or fails with one of the
// sentinel errors in errors.go. Validation order: empty input, length
// mismatch, unknown conventions, then monotonicity of the derived times.
func NewZeroRateCurve(valuationDate time.Time, zeroDates []time.Time, zeroRates []float64, freq FrequencyType, dayCount DayCountType, interp InterpMethod) (*ZeroRateCurve, error) {
	if len(zeroDates) == 0 {
		return nil, ErrEmptyInput
	}
	if len(zeroDates) != len(zeroRates) {
		return nil, fmt.Errorf("%w: %d dates vs %d rates", ErrLengthMismatch, len(zeroDates), len(zeroRates))
	}
	if err := checkConventions(freq, dayCount, interp); err != nil {
		return nil, err
	}

	times := make([]float64, len(zeroDates))
	for i, d := range zeroDates {
		times[i] = utils.YearFraction(valuationDate, d, string(dayCount))
	}
	if err := checkMonotonic(times); err != nil {
		return nil, err
	}

	dfs := make([]float64, len(times))
	for i, t := range times {
		dfs[i] = ZeroToDF(zeroRates[i], t, freq)
	}

	return &ZeroRateCurve{
		PointCurve: PointCurve{
			valuationDate: valuationDate,
			frequencyType: freq,
			dayCountType:  dayCount,
			interpMethod:  interp,
			times:         times,
			dfs:           dfs,
		},
		zeroDates: append([]time.Time(nil), zeroDates...),
		zeroRates: append([]float64(nil), zeroRates...),
	}, nil
}

// ZeroDates returns a copy of the original observation dates.
func (c *ZeroRateCurve) ZeroDates() []time.Time {
	return append([]time.Time(nil), c.zeroDates...)
}

// ZeroRates returns a copy of the original observed zero rates.
func (c *ZeroRateCurve) ZeroRates() []float64 {
	return append([]float64(nil), c.zeroRates...)
}

// String renders the curve from its original inputs: one line per
// observation in input order, then the compounding frequency label.
func (c *ZeroRateCurve) String() string {
	var b strings.Builder
	b.WriteString("ZeroRateCurve\n")
	b.WriteString("DATES: ZERO RATES\n")
	for i, d := range c.zeroDates {
		fmt.Fprintf(&b, "%s: %.6f\n", d.Format("2006-01-02"), c.zeroRates[i])
	}
	fmt.Fprintf(&b, "FREQUENCY: %s\n", c.frequencyType)
	return b.String()
}

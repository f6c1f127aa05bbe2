package curve

import (
	"math"
	"sort"
)

// InterpMethod selects the interpolation scheme used between curve pillars.
type InterpMethod string

const (
	// FlatForward holds the instantaneous forward rate constant between
	// pillars (log-linear in discount factor). This is the default and the
	// only scheme guaranteed to keep interpolated DFs strictly positive.
	FlatForward InterpMethod = "FLAT_FORWARD"

	// LinearZero interpolates linearly in the continuously compounded zero rate.
	LinearZero InterpMethod = "LINEAR_ZERO"

	// LinearDF interpolates linearly in the discount factor itself.
	LinearDF InterpMethod = "LINEAR_DF"
)

// IsValid reports whether m is a recognized interpolation method.
func (m InterpMethod) IsValid() bool {
	switch m {
	case FlatForward, LinearZero, LinearDF:
		return true
	}
	return false
}

// interpolateDF evaluates the discount factor at time t > 0 over strictly
// increasing pillar times with parallel discount factors.
//
// The curve is anchored at (0, 1): queries before the first pillar
// interpolate against that anchor. Queries beyond the last pillar
// extrapolate off the final segment; for FlatForward this holds the last
// instantaneous forward rate constant, for the linear schemes the last
// zero rate / discount factor is held flat.
func interpolateDF(t float64, times, dfs []float64, method InterpMethod) float64 {
	n := len(times)

	// First pillar index with times[idx] >= t.
	idx := sort.SearchFloat64s(times, t)
	if idx < n && times[idx] == t {
		return dfs[idx]
	}

	var t1, df1, t2, df2 float64
	switch {
	case idx == 0:
		t1, df1 = 0, 1.0
		t2, df2 = times[0], dfs[0]
	case idx >= n:
		if n == 1 {
			t1, df1 = 0, 1.0
		} else {
			t1, df1 = times[n-2], dfs[n-2]
		}
		t2, df2 = times[n-1], dfs[n-1]
	default:
		t1, df1 = times[idx-1], dfs[idx-1]
		t2, df2 = times[idx], dfs[idx]
	}

	// Zero-width segment: a lone pillar at t=0 collapses onto the anchor.
	// Hold its DF flat rather than dividing by the segment width.
	if t2 == t1 {
		return df2
	}

	switch method {
	case LinearDF:
		if t > t2 {
			return df2
		}
		return df1 + (df2-df1)*(t-t1)/(t2-t1)
	case LinearZero:
		r2 := -math.Log(df2) / t2
		r1 := r2
		if t1 > 0 {
			r1 = -math.Log(df1) / t1
		}
		r := r2
		if t <= t2 {
			r = r1 + (r2-r1)*(t-t1)/(t2-t1)
		}
		return math.Exp(-r * t)
	default:
		forwardRate := math.Log(df1/df2) / (t2 - t1)
		return df1 * math.Exp(-forwardRate*(t-t1))
	}
}

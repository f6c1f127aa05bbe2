package marketdata

import (
	"errors"
	"fmt"
	"time"

	"github.com/meenmo/zerocurve/curve"
)

// ErrNoSnapshot is returned when a feed has no quotes for the requested
// curve id and as-of date.
var ErrNoSnapshot = errors.New("no zero rate snapshot for curve and date")

// ZeroQuote is a single zero rate observation: the maturity date and the
// annualized rate (decimal, e.g. 0.025 == 2.5%) observed for it.
type ZeroQuote struct {
	Date time.Time
	Rate float64
}

// ZeroRateFeed supplies zero rate snapshots for curve construction.
// Quotes are returned in ascending maturity-date order.
type ZeroRateFeed interface {
	Snapshot(curveID string, asOf time.Time) ([]ZeroQuote, error)
}

// MapZeroRateFeed is a static map-backed implementation for development/testing.
type MapZeroRateFeed struct {
	snapshots map[string][]ZeroQuote
}

func NewMapZeroRateFeed() *MapZeroRateFeed {
	return &MapZeroRateFeed{snapshots: make(map[string][]ZeroQuote)}
}

// Add registers the snapshot for a curve id and as-of date, replacing any
// previous one.
func (m *MapZeroRateFeed) Add(curveID string, asOf time.Time, quotes []ZeroQuote) {
	m.snapshots[snapshotKey(curveID, asOf)] = append([]ZeroQuote(nil), quotes...)
}

func (m *MapZeroRateFeed) Snapshot(curveID string, asOf time.Time) ([]ZeroQuote, error) {
	quotes, ok := m.snapshots[snapshotKey(curveID, asOf)]
	if !ok {
		return nil, fmt.Errorf("%w: %s @ %s", ErrNoSnapshot, curveID, asOf.Format("2006-01-02"))
	}
	return append([]ZeroQuote(nil), quotes...), nil
}

func snapshotKey(curveID string, asOf time.Time) string {
	return curveID + "|" + asOf.Format("2006-01-02")
}

// BuildCurveFromFeed fetches the snapshot for (curveID, asOf) and constructs
// a zero rate curve anchored at asOf. Construction failures propagate from
// curve.NewZeroRateCurve unchanged.
func BuildCurveFromFeed(feed ZeroRateFeed, curveID string, asOf time.Time, freq curve.FrequencyType, dayCount curve.DayCountType, interp curve.InterpMethod) (*curve.ZeroRateCurve, error) {
	quotes, err := feed.Snapshot(curveID, asOf)
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(quotes))
	rates := make([]float64, len(quotes))
	for i, q := range quotes {
		dates[i] = q.Date
		rates[i] = q.Rate
	}
	return curve.NewZeroRateCurve(asOf, dates, rates, freq, dayCount, interp)
}

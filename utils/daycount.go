package utils

import (
	"time"
)

// YearFraction computes year fraction between two dates using the specified day count convention.
// Supported conventions: ACT/ACT (ISDA), ACT/360, ACT/365F, 30E/360, 30/360
func YearFraction(start, end time.Time, convention string) float64 {
	switch convention {
	case "ACT/ACT":
		// ACT/ACT ISDA: split the period at calendar year boundaries and
		// accrue each piece over its own year length (365 or 366).
		if start.Year() == end.Year() {
			return Days(start, end) / daysInYear(start.Year())
		}
		startOfNext := time.Date(start.Year()+1, 1, 1, 0, 0, 0, 0, time.UTC)
		startOfLast := time.Date(end.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		frac := Days(start, startOfNext) / daysInYear(start.Year())
		frac += float64(end.Year() - start.Year() - 1)
		frac += Days(startOfLast, end) / daysInYear(end.Year())
		return frac
	case "ACT/360":
		return Days(start, end) / 360.0
	case "ACT/365F":
		return Days(start, end) / 365.0
	case "30E/360", "30/360":
		// 30E/360 ISDA (Eurobond basis)
		// D1 and D2 are capped at 30
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
	default:
		return Days(start, end) / 365.0
	}
}

func daysInYear(year int) float64 {
	if isLeapYear(year) {
		return 366.0
	}
	return 365.0
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

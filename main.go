package main

import (
	"fmt"
	"log"
	"time"

	"github.com/meenmo/zerocurve/curve"
	"github.com/meenmo/zerocurve/utils"
)

func main() {
	valuation := utils.DateParser("2020-01-01")
	zeroDates := parseDates([]string{"2021-01-01", "2022-01-01", "2025-01-01", "2030-01-01"})
	zeroRates := []float64{0.0200, 0.0250, 0.0280, 0.0300}

	crv, err := curve.NewZeroRateCurve(
		valuation,
		zeroDates,
		zeroRates,
		curve.FreqAnnual,
		curve.DayCountActAct,
		curve.FlatForward,
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(crv)
	fmt.Println()

	for _, t := range []float64{0.5, 1.0, 2.0, 7.5} {
		df, _ := crv.DF(t)
		zero, _ := crv.ZeroRate(t)
		fmt.Printf("t=%5.2f  DF=%.8f  zero=%.4f%%\n", t, df, zero*100)
	}

	bumped := crv.Bump(0.0010)
	df, _ := crv.DF(1.0)
	bdf, _ := bumped.DF(1.0)
	fmt.Printf("\n+10bp bump: DF(1.0) %.8f -> %.8f\n", df, bdf)
}

func parseDates(strs []string) []time.Time {
	dates := make([]time.Time, len(strs))
	for i, s := range strs {
		dates[i] = utils.DateParser(s)
	}
	return dates
}

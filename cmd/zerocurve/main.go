package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/meenmo/zerocurve/curve"
	"github.com/meenmo/zerocurve/utils"
)

// curveInput defines the JSON input schema.
//
// Conventions:
// - dates are "2006-01-02" strings
// - rates are in percent (e.g., 2.50 means 2.50%)
// - bump_bp is a parallel shift in basis points of the continuous zero curve
type curveInput struct {
	ValuationDate string    `json:"valuation_date"`
	Dates         []string  `json:"dates"`
	RatesPct      []float64 `json:"rates"`
	Frequency     string    `json:"frequency"`   // default ANNUAL
	DayCount      string    `json:"day_count"`   // default ACT/ACT
	Interp        string    `json:"interp"`      // default FLAT_FORWARD
	BumpBP        float64   `json:"bump_bp"`     // optional
	QueryDates    []string  `json:"query_dates"` // optional, defaults to the input dates
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zerocurve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON input path (reads stdin if omitted)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	raw, err := readInput(*inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}

	var in curveInput
	if err := json.Unmarshal(raw, &in); err != nil {
		fmt.Fprintf(stderr, "parse input: %v\n", err)
		return 1
	}

	if err := printCurve(stdout, in); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func printCurve(w io.Writer, in curveInput) error {
	valuation, err := time.Parse("2006-01-02", in.ValuationDate)
	if err != nil {
		return fmt.Errorf("valuation_date: %w", err)
	}
	dates, err := parseDates(in.Dates)
	if err != nil {
		return fmt.Errorf("dates: %w", err)
	}

	rates := make([]float64, len(in.RatesPct))
	for i, r := range in.RatesPct {
		rates[i] = r / 100.0
	}

	freq := curve.FrequencyType(defaultStr(in.Frequency, string(curve.FreqAnnual)))
	dayCount := curve.DayCountType(defaultStr(in.DayCount, string(curve.DayCountActAct)))
	interp := curve.InterpMethod(defaultStr(in.Interp, string(curve.FlatForward)))

	crv, err := curve.NewZeroRateCurve(valuation, dates, rates, freq, dayCount, interp)
	if err != nil {
		return fmt.Errorf("build curve: %w", err)
	}

	queryDates := dates
	if len(in.QueryDates) > 0 {
		queryDates, err = parseDates(in.QueryDates)
		if err != nil {
			return fmt.Errorf("query_dates: %w", err)
		}
	}

	var bumped curve.DiscountCurve
	if in.BumpBP != 0 {
		bumped = crv.Bump(in.BumpBP / 10000.0)
	}

	fmt.Fprint(w, crv)
	fmt.Fprintln(w)
	if bumped != nil {
		fmt.Fprintf(w, "%-12s %10s %12s %10s %12s\n", "DATE", "T", "DF", "ZERO%", "DF BUMPED")
	} else {
		fmt.Fprintf(w, "%-12s %10s %12s %10s\n", "DATE", "T", "DF", "ZERO%")
	}
	for _, d := range queryDates {
		t := utils.YearFraction(valuation, d, string(dayCount))
		df, err := crv.DF(t)
		if err != nil {
			return fmt.Errorf("query %s: %w", d.Format("2006-01-02"), err)
		}
		zero, err := crv.ZeroRate(t)
		if err != nil {
			return fmt.Errorf("query %s: %w", d.Format("2006-01-02"), err)
		}
		if bumped != nil {
			bdf, err := bumped.DF(t)
			if err != nil {
				return fmt.Errorf("query %s: %w", d.Format("2006-01-02"), err)
			}
			fmt.Fprintf(w, "%-12s %10.6f %12.8f %10.6f %12.8f\n", d.Format("2006-01-02"), t, df, zero*100, bdf)
		} else {
			fmt.Fprintf(w, "%-12s %10.6f %12.8f %10.6f\n", d.Format("2006-01-02"), t, df, zero*100)
		}
	}
	return nil
}

func parseDates(strs []string) ([]time.Time, error) {
	dates := make([]time.Time, len(strs))
	for i, s := range strs {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, err
		}
		dates[i] = d
	}
	return dates, nil
}

func defaultStr(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return strings.TrimSpace(s)
}

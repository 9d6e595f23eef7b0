package entity

import (
	"github.com/shopspring/decimal"
)

// testCatalog lists the orderable lab tests with their current costs. A cost
// is copied onto the TestOrder at request time, so editing this table never
// changes fees of requests already in the ledger.
var testCatalog = map[string]decimal.Decimal{
	"Blood Test":     decimal.RequireFromString("50.00"),
	"Urine Analysis": decimal.RequireFromString("35.00"),
	"ECG":            decimal.RequireFromString("65.00"),
	"X-Ray":          decimal.RequireFromString("90.00"),
}

// normalRanges holds the advisory reference ranges per test and age band.
// Display-only; no transition is ever gated on them.
var normalRanges = map[string]map[AgeBand]string{
	"Blood Test": {
		AgeBandChild: "RBC: 4.0 - 5.2 million cells/mcL, WBC: 5,000 - 13,000 cells/mcL",
		AgeBandAdult: "RBC: 4.5 - 5.5 million cells/mcL, WBC: 4,500 - 11,000 cells/mcL",
	},
	"Urine Analysis": {
		AgeBandChild: "Clear, pH 4.5-8.0, no protein or glucose",
		AgeBandAdult: "Clear, pH 4.5-8.0, no protein or glucose",
	},
	"ECG": {
		AgeBandChild: "Normal Sinus Rhythm, 70-110 bpm",
		AgeBandAdult: "Normal Sinus Rhythm, 60-100 bpm",
	},
	"X-Ray": {
		AgeBandChild: "No fractures or abnormalities",
		AgeBandAdult: "No fractures or abnormalities",
	},
}

// LabTests returns the orderable test names.
func LabTests() []string {
	names := make([]string, 0, len(testCatalog))
	for name := range testCatalog {
		names = append(names, name)
	}
	return names
}

// TestCost looks up a test's current cost.
func TestCost(name string) (decimal.Decimal, bool) {
	cost, ok := testCatalog[name]
	return cost, ok
}

// NormalRange returns the advisory reference range for a test and age band,
// or "N/A" when the test is unknown.
func NormalRange(name string, band AgeBand) string {
	ranges, ok := normalRanges[name]
	if !ok {
		return "N/A"
	}
	return ranges[band.RangeBand()]
}

package render

import (
	"testing"

	"github.com/valter-silva-au/covgap/pkg/models"
)

// fixture returns a small analysis result used across renderer tests:
// api is fully covered, cache has only an optional monitor, web is at 50%.
func fixture() ([]models.SystemCoverage, models.CoverageSummary) {
	coverages := []models.SystemCoverage{
		{
			System:          "api",
			RequiredTotal:   1,
			RequiredCovered: 1,
		},
		{
			System:          "cache",
			OptionalTotal:   1,
			OptionalCovered: 1,
		},
		{
			System:          "web",
			RequiredTotal:   2,
			RequiredCovered: 1,
			OptionalTotal:   1,
			MissingMonitors: []models.MonitoringRecord{
				{System: "web", Monitor: "disk", Required: true},
			},
		},
	}
	summary := models.CoverageSummary{
		Systems:         3,
		RequiredTotal:   3,
		RequiredCovered: 2,
		OptionalTotal:   2,
		OptionalCovered: 1,
	}
	return coverages, summary
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"table", "markdown", "csv", "json"} {
		format, err := ParseFormat(name)
		if err != nil {
			t.Errorf("ParseFormat(%q) returned error: %v", name, err)
		}
		if string(format) != name {
			t.Errorf("ParseFormat(%q) = %q", name, format)
		}
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := ParseFormat(""); err == nil {
		t.Error("expected error for empty format")
	}
}

func TestFormatPercentage(t *testing.T) {
	cases := []struct {
		ratio   float64
		defined bool
		want    string
	}{
		{0.5, true, "50.0%"},
		{1, true, "100.0%"},
		{0, true, "0.0%"},
		{0.666, true, "66.6%"},
		{0, false, "N/A"},
	}
	for _, tc := range cases {
		if got := FormatPercentage(tc.ratio, tc.defined); got != tc.want {
			t.Errorf("FormatPercentage(%v, %v) = %q, want %q", tc.ratio, tc.defined, got, tc.want)
		}
	}
}

package render

import (
	"encoding/json"
	"fmt"

	"github.com/valter-silva-au/covgap/pkg/models"
)

// JSONReport is the document shape of the JSON report.
type JSONReport struct {
	Systems []JSONSystem `json:"systems"`
	Summary JSONSummary  `json:"summary"`
}

// JSONSystem is one system's coverage in the JSON report. CoverageRatio is
// null when the system has no required monitors.
type JSONSystem struct {
	System          string   `json:"system"`
	RequiredTotal   int      `json:"required_total"`
	RequiredCovered int      `json:"required_covered"`
	CoverageRatio   *float64 `json:"coverage_ratio"`
	OptionalTotal   int      `json:"optional_total"`
	OptionalCovered int      `json:"optional_covered"`
	MissingMonitors []string `json:"missing_monitors"`
}

// JSONSummary is the aggregate section of the JSON report. AverageCoverage
// is null when no required monitors exist.
type JSONSummary struct {
	Systems         int      `json:"systems"`
	RequiredTotal   int      `json:"required_total"`
	RequiredCovered int      `json:"required_covered"`
	AverageCoverage *float64 `json:"average_coverage"`
	OptionalTotal   int      `json:"optional_total"`
	OptionalCovered int      `json:"optional_covered"`
}

// NewJSONReport builds the JSON document structure from an analysis result.
func NewJSONReport(coverages []models.SystemCoverage, summary models.CoverageSummary) JSONReport {
	systems := make([]JSONSystem, 0, len(coverages))
	for _, cov := range coverages {
		systems = append(systems, JSONSystem{
			System:          cov.System,
			RequiredTotal:   cov.RequiredTotal,
			RequiredCovered: cov.RequiredCovered,
			CoverageRatio:   optionalRatio(cov.CoverageRatio()),
			OptionalTotal:   cov.OptionalTotal,
			OptionalCovered: cov.OptionalCovered,
			MissingMonitors: cov.MissingMonitorNames(),
		})
	}

	return JSONReport{
		Systems: systems,
		Summary: JSONSummary{
			Systems:         summary.Systems,
			RequiredTotal:   summary.RequiredTotal,
			RequiredCovered: summary.RequiredCovered,
			AverageCoverage: optionalRatio(summary.AverageCoverage()),
			OptionalTotal:   summary.OptionalTotal,
			OptionalCovered: summary.OptionalCovered,
		},
	}
}

// JSON renders the coverage report as an indented JSON document.
func JSON(coverages []models.SystemCoverage, summary models.CoverageSummary) (string, error) {
	data, err := json.MarshalIndent(NewJSONReport(coverages, summary), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding json report: %w", err)
	}
	return string(data), nil
}

// optionalRatio converts a (ratio, defined) pair to a nullable value.
func optionalRatio(ratio float64, defined bool) *float64 {
	if !defined {
		return nil
	}
	return &ratio
}

package render

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/covgap/pkg/models"
)

// tableHeaders are shared by the table and markdown renderers.
var tableHeaders = []string{
	"System",
	"Required",
	"Covered",
	"Coverage",
	"Optional",
	"Optional Covered",
	"Missing Required",
}

// systemRow renders one system as table cells.
func systemRow(cov models.SystemCoverage) []string {
	missing := strings.Join(cov.MissingMonitorNames(), ", ")
	if missing == "" {
		missing = "-"
	}
	ratio, defined := cov.CoverageRatio()
	return []string{
		cov.System,
		fmt.Sprintf("%d", cov.RequiredTotal),
		fmt.Sprintf("%d", cov.RequiredCovered),
		FormatPercentage(ratio, defined),
		fmt.Sprintf("%d", cov.OptionalTotal),
		fmt.Sprintf("%d", cov.OptionalCovered),
		missing,
	}
}

// Table renders the coverage report as pipe-delimited text with a header, a
// divider, one row per system, and trailing summary lines.
func Table(coverages []models.SystemCoverage, summary models.CoverageSummary) string {
	dividers := make([]string, len(tableHeaders))
	for i, h := range tableHeaders {
		dividers[i] = strings.Repeat("-", len(h))
	}

	lines := []string{
		strings.Join(tableHeaders, " | "),
		strings.Join(dividers, "-+-"),
	}
	for _, cov := range coverages {
		lines = append(lines, strings.Join(systemRow(cov), " | "))
	}

	avg, defined := summary.AverageCoverage()
	lines = append(lines,
		"",
		"Overview:",
		fmt.Sprintf("  Systems: %d", summary.Systems),
		fmt.Sprintf("  Required monitors: %d/%d (%s)",
			summary.RequiredCovered, summary.RequiredTotal, FormatPercentage(avg, defined)),
		fmt.Sprintf("  Optional monitors: %d/%d",
			summary.OptionalCovered, summary.OptionalTotal),
	)

	return strings.Join(lines, "\n")
}

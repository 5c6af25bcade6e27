package render

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/covgap/pkg/models"
)

// Markdown renders the coverage report as a pipe table with an alignment
// separator row, followed by a bolded one-line summary.
func Markdown(coverages []models.SystemCoverage, summary models.CoverageSummary) string {
	separators := make([]string, len(tableHeaders))
	for i := range tableHeaders {
		separators[i] = ":-"
	}

	lines := []string{
		strings.Join(tableHeaders, " | "),
		strings.Join(separators, " | "),
	}
	for _, cov := range coverages {
		lines = append(lines, strings.Join(systemRow(cov), " | "))
	}

	avg, defined := summary.AverageCoverage()
	lines = append(lines,
		"",
		fmt.Sprintf("**Overview**: %d systems, required coverage %s, optional monitors %d/%d.",
			summary.Systems, FormatPercentage(avg, defined),
			summary.OptionalCovered, summary.OptionalTotal),
	)

	return strings.Join(lines, "\n")
}

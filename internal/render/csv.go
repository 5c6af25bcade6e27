package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/valter-silva-au/covgap/pkg/models"
)

// csvFieldnames are the fixed column names of the CSV report.
var csvFieldnames = []string{
	"system",
	"required_total",
	"required_covered",
	"coverage_ratio",
	"optional_total",
	"optional_covered",
	"missing_monitors",
}

// csvRatio renders a ratio as a 4-decimal fraction, or empty when undefined.
func csvRatio(ratio float64, defined bool) string {
	if !defined {
		return ""
	}
	return fmt.Sprintf("%.4f", ratio)
}

// WriteCSV writes the coverage report as CSV: a header row, one row per
// system, a blank row, then a SUMMARY row with the aggregate counts.
func WriteCSV(w io.Writer, coverages []models.SystemCoverage, summary models.CoverageSummary) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvFieldnames); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, cov := range coverages {
		ratio, defined := cov.CoverageRatio()
		row := []string{
			cov.System,
			fmt.Sprintf("%d", cov.RequiredTotal),
			fmt.Sprintf("%d", cov.RequiredCovered),
			csvRatio(ratio, defined),
			fmt.Sprintf("%d", cov.OptionalTotal),
			fmt.Sprintf("%d", cov.OptionalCovered),
			strings.Join(cov.MissingMonitorNames(), "; "),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", cov.System, err)
		}
	}

	if err := writer.Write(make([]string, len(csvFieldnames))); err != nil {
		return fmt.Errorf("writing csv separator row: %w", err)
	}

	avg, defined := summary.AverageCoverage()
	summaryRow := []string{
		"SUMMARY",
		fmt.Sprintf("%d", summary.RequiredTotal),
		fmt.Sprintf("%d", summary.RequiredCovered),
		csvRatio(avg, defined),
		fmt.Sprintf("%d", summary.OptionalTotal),
		fmt.Sprintf("%d", summary.OptionalCovered),
		"",
	}
	if err := writer.Write(summaryRow); err != nil {
		return fmt.Errorf("writing csv summary row: %w", err)
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the CSV report to a file at path.
func WriteCSVFile(path string, coverages []models.SystemCoverage, summary models.CoverageSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, coverages, summary); err != nil {
		return err
	}
	return f.Close()
}

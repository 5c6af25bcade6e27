// Package render turns coverage analysis results into report text. Each
// output format is a pure function of the analysis result.
package render

import "fmt"

// Format selects one of the supported console output formats. The set is
// closed; there is no renderer plugin mechanism.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
)

// ParseFormat validates a format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatMarkdown, FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (use table, markdown, csv, or json)", s)
	}
}

// FormatPercentage renders a coverage ratio as a fixed-point percentage with
// one decimal place, or "N/A" when the ratio is undefined.
func FormatPercentage(ratio float64, defined bool) string {
	if !defined {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", ratio*100)
}

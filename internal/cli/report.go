package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/covgap/internal/core"
	"github.com/valter-silva-au/covgap/internal/render"
	"github.com/valter-silva-au/covgap/pkg/models"
)

var (
	reportInput  string
	reportOutput string
	reportFormat string
)

// runReport is the root command's behavior: load, analyze, render.
func runReport(cmd *cobra.Command, args []string) error {
	if Loader == nil {
		return fmt.Errorf("record loader not initialized")
	}

	records, err := Loader.Load(reportInput)
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}

	coverages, summary := core.Analyze(records)

	if reportOutput != "" {
		return writeReportFile(reportOutput, coverages, summary)
	}

	format := reportFormat
	if format == "" {
		format = defaultFormat()
	}
	parsed, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	switch parsed {
	case render.FormatTable:
		fmt.Println(render.Table(coverages, summary))
	case render.FormatMarkdown:
		fmt.Println(render.Markdown(coverages, summary))
	case render.FormatCSV:
		return printCSV(coverages, summary)
	case render.FormatJSON:
		out, err := render.JSON(coverages, summary)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

// defaultFormat resolves the console format when --format is not given.
func defaultFormat() string {
	if ReportCfg != nil && ReportCfg.DefaultFormat != "" {
		return ReportCfg.DefaultFormat
	}
	return string(render.FormatTable)
}

// writeReportFile writes the report to path, choosing the writer by
// extension, and prints a confirmation line.
func writeReportFile(path string, coverages []models.SystemCoverage, summary models.CoverageSummary) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		if err := render.WriteCSVFile(path, coverages, summary); err != nil {
			return err
		}
	case ".md", ".markdown":
		if err := os.WriteFile(path, []byte(render.Markdown(coverages, summary)+"\n"), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s (use .csv, .md, or .markdown)", path)
	}

	fmt.Printf("Report written to %s\n", path)
	return nil
}

// printCSV renders the CSV report through a scratch file and prints it. The
// scratch file is removed on every exit path, including render and read
// failures.
func printCSV(coverages []models.SystemCoverage, summary models.CoverageSummary) error {
	tmp, err := os.CreateTemp("", "covgap-report-*.csv")
	if err != nil {
		return fmt.Errorf("creating scratch file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing scratch file: %w", err)
	}
	if err := render.WriteCSVFile(path, coverages, summary); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scratch file: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&reportInput, "input", "i", "", "Input data file (JSON, CSV, or YAML)")
	rootCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Write the report to a file (.csv, .md, or .markdown)")
	rootCmd.Flags().StringVar(&reportFormat, "format", "", "Console format: table, markdown, csv, or json (default table)")
	_ = rootCmd.MarkFlagRequired("input")
}

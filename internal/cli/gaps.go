package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/covgap/internal/core"
)

var (
	gapsInput     string
	gapsJSON      bool
	gapsWarnBelow float64
	gapsCritBelow float64
)

// Severity styles for gap output.
var (
	gapHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	gapMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	gapLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Show coverage gaps and threshold alerts",
	Long: `Evaluate per-system required coverage against the configured thresholds
and display any triggered alerts.

A system below the critical threshold raises a high alert, below the warning
threshold a medium alert, and any remaining uncovered required monitors a low
alert. Thresholds come from .covgap.yaml and can be overridden per run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Loader == nil {
			return fmt.Errorf("record loader not initialized")
		}

		records, err := Loader.Load(gapsInput)
		if err != nil {
			return fmt.Errorf("loading records: %w", err)
		}
		coverages, _ := core.Analyze(records)

		engine := Gaps
		if engine == nil || cmd.Flags().Changed("warn-below") || cmd.Flags().Changed("crit-below") {
			thresholds := resolveThresholds()
			if cmd.Flags().Changed("warn-below") {
				thresholds.WarnBelow = gapsWarnBelow
			}
			if cmd.Flags().Changed("crit-below") {
				thresholds.CritBelow = gapsCritBelow
			}
			engine = core.NewGapEngine(thresholds)
		}

		alerts := engine.Evaluate(coverages)

		if gapsJSON {
			data, err := json.MarshalIndent(alerts, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting gaps as JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if len(alerts) == 0 {
			fmt.Println("No coverage gaps found.")
			return nil
		}

		fmt.Printf("%d coverage gap(s):\n\n", len(alerts))
		for _, alert := range alerts {
			severity := styleForGapSeverity(alert.Severity).
				Render(fmt.Sprintf("[%s]", strings.ToUpper(string(alert.Severity))))
			fmt.Printf("  %s %s\n", severity, alert.Message)
		}
		return nil
	},
}

// resolveThresholds returns the configured thresholds, falling back to the
// defaults when no configuration was loaded.
func resolveThresholds() core.GapThresholds {
	thresholds := core.DefaultGapThresholds()
	if ReportCfg != nil {
		thresholds.WarnBelow = ReportCfg.Gaps.WarnBelow
		thresholds.CritBelow = ReportCfg.Gaps.CritBelow
	}
	return thresholds
}

func styleForGapSeverity(severity core.GapSeverity) lipgloss.Style {
	switch severity {
	case core.SeverityHigh:
		return gapHighStyle
	case core.SeverityMedium:
		return gapMediumStyle
	case core.SeverityLow:
		return gapLowStyle
	default:
		return lipgloss.NewStyle()
	}
}

func init() {
	gapsCmd.Flags().StringVarP(&gapsInput, "input", "i", "", "Input data file (JSON, CSV, or YAML)")
	gapsCmd.Flags().BoolVar(&gapsJSON, "json", false, "Output gaps as JSON")
	gapsCmd.Flags().Float64Var(&gapsWarnBelow, "warn-below", 0.9, "Warning threshold for required coverage")
	gapsCmd.Flags().Float64Var(&gapsCritBelow, "crit-below", 0.5, "Critical threshold for required coverage")
	_ = gapsCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(gapsCmd)
}

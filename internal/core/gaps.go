package core

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/covgap/pkg/models"
)

// GapSeverity represents the urgency of a coverage gap.
type GapSeverity string

const (
	SeverityHigh   GapSeverity = "high"
	SeverityMedium GapSeverity = "medium"
	SeverityLow    GapSeverity = "low"
)

// GapAlert represents a triggered coverage gap condition for one system.
type GapAlert struct {
	System   string      `json:"system"`
	Severity GapSeverity `json:"severity"`
	Message  string      `json:"message"`
}

// GapThresholds configures when gap alerts fire.
type GapThresholds struct {
	// WarnBelow is the required coverage ratio below which a medium alert
	// fires.
	WarnBelow float64 `yaml:"warn_below" json:"warn_below"`

	// CritBelow is the ratio below which the alert escalates to high.
	CritBelow float64 `yaml:"crit_below" json:"crit_below"`
}

// DefaultGapThresholds returns sensible defaults for gap thresholds.
func DefaultGapThresholds() GapThresholds {
	return GapThresholds{
		WarnBelow: 0.9,
		CritBelow: 0.5,
	}
}

// GapEngine evaluates coverage results against the configured thresholds.
type GapEngine interface {
	Evaluate(coverages []models.SystemCoverage) []GapAlert
}

// gapEngine implements GapEngine by checking each system's required
// coverage ratio and missing monitors.
type gapEngine struct {
	thresholds GapThresholds
}

// NewGapEngine creates a GapEngine with the given thresholds.
func NewGapEngine(thresholds GapThresholds) GapEngine {
	return &gapEngine{thresholds: thresholds}
}

// Evaluate checks every system and returns triggered alerts in the order the
// systems were given. A system with no required monitors has an undefined
// ratio and never triggers a threshold alert; a fully covered system whose
// optional monitors lapse triggers nothing either.
func (ge *gapEngine) Evaluate(coverages []models.SystemCoverage) []GapAlert {
	var alerts []GapAlert

	for _, cov := range coverages {
		ratio, ok := cov.CoverageRatio()
		if !ok {
			continue
		}

		switch {
		case ratio < ge.thresholds.CritBelow:
			alerts = append(alerts, GapAlert{
				System:   cov.System,
				Severity: SeverityHigh,
				Message: fmt.Sprintf("system %q required coverage %.1f%% is below critical threshold %.1f%% (missing: %s)",
					cov.System, ratio*100, ge.thresholds.CritBelow*100,
					strings.Join(cov.MissingMonitorNames(), ", ")),
			})
		case ratio < ge.thresholds.WarnBelow:
			alerts = append(alerts, GapAlert{
				System:   cov.System,
				Severity: SeverityMedium,
				Message: fmt.Sprintf("system %q required coverage %.1f%% is below warning threshold %.1f%% (missing: %s)",
					cov.System, ratio*100, ge.thresholds.WarnBelow*100,
					strings.Join(cov.MissingMonitorNames(), ", ")),
			})
		case len(cov.MissingMonitors) > 0:
			alerts = append(alerts, GapAlert{
				System:   cov.System,
				Severity: SeverityLow,
				Message: fmt.Sprintf("system %q has %d uncovered required monitor(s): %s",
					cov.System, len(cov.MissingMonitors),
					strings.Join(cov.MissingMonitorNames(), ", ")),
			})
		}
	}

	return alerts
}

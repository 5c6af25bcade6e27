package cli

import (
	"testing"

	"github.com/valter-silva-au/covgap/internal/core"
	"github.com/valter-silva-au/covgap/pkg/models"
)

func TestResolveThresholds_Defaults(t *testing.T) {
	ReportCfg = nil

	thresholds := resolveThresholds()
	want := core.DefaultGapThresholds()
	if thresholds != want {
		t.Errorf("resolveThresholds() = %+v, want %+v", thresholds, want)
	}
}

func TestResolveThresholds_FromConfig(t *testing.T) {
	ReportCfg = &models.ReportConfig{
		DefaultFormat: "table",
		Gaps:          models.GapConfig{WarnBelow: 0.95, CritBelow: 0.7},
	}
	t.Cleanup(func() { ReportCfg = nil })

	thresholds := resolveThresholds()
	if thresholds.WarnBelow != 0.95 || thresholds.CritBelow != 0.7 {
		t.Errorf("resolveThresholds() = %+v, want config values", thresholds)
	}
}

func TestStyleForGapSeverity_DistinctStyles(t *testing.T) {
	high := styleForGapSeverity(core.SeverityHigh)
	medium := styleForGapSeverity(core.SeverityMedium)
	low := styleForGapSeverity(core.SeverityLow)

	if !high.GetBold() {
		t.Error("high severity style should be bold")
	}
	if high.GetForeground() == medium.GetForeground() {
		t.Error("high and medium severities should use different colors")
	}
	if medium.GetForeground() == low.GetForeground() {
		t.Error("medium and low severities should use different colors")
	}
}

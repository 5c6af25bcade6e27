package models

// SystemCoverage holds the coverage statistics for a single system.
// Values are computed once by the analyzer and never mutated afterwards.
type SystemCoverage struct {
	System          string
	RequiredTotal   int
	RequiredCovered int
	OptionalTotal   int
	OptionalCovered int

	// MissingMonitors lists the required records that are not monitored,
	// in their original input order.
	MissingMonitors []MonitoringRecord
}

// CoverageRatio returns the fraction of required monitors that are covered.
// The second return value is false when the system has no required monitors,
// in which case the ratio is undefined rather than zero.
func (sc SystemCoverage) CoverageRatio() (float64, bool) {
	if sc.RequiredTotal == 0 {
		return 0, false
	}
	return float64(sc.RequiredCovered) / float64(sc.RequiredTotal), true
}

// MissingMonitorNames returns the monitor names of the missing records.
func (sc SystemCoverage) MissingMonitorNames() []string {
	names := make([]string, 0, len(sc.MissingMonitors))
	for _, r := range sc.MissingMonitors {
		names = append(names, r.Monitor)
	}
	return names
}

// CoverageSummary aggregates coverage counts across all systems in a run.
type CoverageSummary struct {
	Systems         int
	RequiredTotal   int
	RequiredCovered int
	OptionalTotal   int
	OptionalCovered int
}

// AverageCoverage returns the pooled required coverage ratio: the sum of
// covered required monitors divided by the sum of required monitors across
// all systems. It is not the mean of per-system ratios. The second return
// value is false when no required monitors exist.
func (cs CoverageSummary) AverageCoverage() (float64, bool) {
	if cs.RequiredTotal == 0 {
		return 0, false
	}
	return float64(cs.RequiredCovered) / float64(cs.RequiredTotal), true
}

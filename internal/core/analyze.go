package core

import (
	"sort"

	"github.com/valter-silva-au/covgap/pkg/models"
)

// Analyze groups records by system and computes per-system coverage plus an
// aggregate summary. Systems are returned in lexicographic order. The
// summary's average coverage pools required counts across systems; it is not
// a mean of per-system ratios. Analyze has no side effects.
func Analyze(records []models.MonitoringRecord) ([]models.SystemCoverage, models.CoverageSummary) {
	grouped := make(map[string][]models.MonitoringRecord)
	for _, record := range records {
		grouped[record.System] = append(grouped[record.System], record)
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	coverages := make([]models.SystemCoverage, 0, len(names))
	var summary models.CoverageSummary

	for _, name := range names {
		cov := models.SystemCoverage{System: name}
		for _, record := range grouped[name] {
			if record.Required {
				cov.RequiredTotal++
				if record.Monitored {
					cov.RequiredCovered++
				} else {
					cov.MissingMonitors = append(cov.MissingMonitors, record)
				}
			} else {
				cov.OptionalTotal++
				if record.Monitored {
					cov.OptionalCovered++
				}
			}
		}

		summary.RequiredTotal += cov.RequiredTotal
		summary.RequiredCovered += cov.RequiredCovered
		summary.OptionalTotal += cov.OptionalTotal
		summary.OptionalCovered += cov.OptionalCovered

		coverages = append(coverages, cov)
	}

	summary.Systems = len(coverages)
	return coverages, summary
}

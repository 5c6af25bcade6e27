package core

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/valter-silva-au/covgap/pkg/models"
)

// recordsGen draws a slice of records over a small system-name alphabet so
// that grouping is actually exercised.
func recordsGen(rt *rapid.T) []models.MonitoringRecord {
	n := rapid.IntRange(0, 40).Draw(rt, "n")
	records := make([]models.MonitoringRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, models.MonitoringRecord{
			System:    rapid.SampledFrom([]string{"api", "db", "web", "cache", "queue"}).Draw(rt, "system"),
			Monitor:   rapid.StringMatching(`[a-z]{2,8}`).Draw(rt, "monitor"),
			Required:  rapid.Bool().Draw(rt, "required"),
			Monitored: rapid.Bool().Draw(rt, "monitored"),
		})
	}
	return records
}

// Property 1: per-system covered counts never exceed totals, and totals sum
// to the record count.
func TestProperty_CoverageCountBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		records := recordsGen(rt)
		coverages, summary := Analyze(records)

		total := 0
		for _, cov := range coverages {
			if cov.RequiredCovered > cov.RequiredTotal {
				t.Fatalf("system %s: required covered %d > total %d",
					cov.System, cov.RequiredCovered, cov.RequiredTotal)
			}
			if cov.OptionalCovered > cov.OptionalTotal {
				t.Fatalf("system %s: optional covered %d > total %d",
					cov.System, cov.OptionalCovered, cov.OptionalTotal)
			}
			if len(cov.MissingMonitors) != cov.RequiredTotal-cov.RequiredCovered {
				t.Fatalf("system %s: %d missing monitors, want %d",
					cov.System, len(cov.MissingMonitors), cov.RequiredTotal-cov.RequiredCovered)
			}
			total += cov.RequiredTotal + cov.OptionalTotal
		}
		if total != len(records) {
			t.Fatalf("partition totals sum to %d, want %d", total, len(records))
		}
		if summary.Systems != len(coverages) {
			t.Fatalf("summary.Systems = %d, want %d", summary.Systems, len(coverages))
		}
	})
}

// Property 2: missing monitors are exactly the unmonitored required records
// of the system, in input order.
func TestProperty_MissingMonitorsExactAndOrdered(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		records := recordsGen(rt)
		coverages, _ := Analyze(records)

		for _, cov := range coverages {
			var want []string
			for _, r := range records {
				if r.System == cov.System && r.Required && !r.Monitored {
					want = append(want, r.Monitor)
				}
			}
			got := cov.MissingMonitorNames()
			if len(got) != len(want) {
				t.Fatalf("system %s: missing = %v, want %v", cov.System, got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("system %s: missing = %v, want %v", cov.System, got, want)
				}
			}
		}
	})
}

// Property 3: the summary pools counts, so the average equals the ratio of
// summed numerators and denominators across systems.
func TestProperty_SummaryPoolsCounts(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		records := recordsGen(rt)
		coverages, summary := Analyze(records)

		reqTotal, reqCovered := 0, 0
		for _, cov := range coverages {
			reqTotal += cov.RequiredTotal
			reqCovered += cov.RequiredCovered
		}

		if summary.RequiredTotal != reqTotal || summary.RequiredCovered != reqCovered {
			t.Fatalf("summary required = %d/%d, want %d/%d",
				summary.RequiredCovered, summary.RequiredTotal, reqCovered, reqTotal)
		}

		avg, defined := summary.AverageCoverage()
		if reqTotal == 0 {
			if defined {
				t.Fatal("average defined with zero pooled required monitors")
			}
			return
		}
		want := float64(reqCovered) / float64(reqTotal)
		if avg != want {
			t.Fatalf("AverageCoverage = %v, want pooled %v", avg, want)
		}
	})
}

package models

// ReportConfig holds settings read from an optional .covgap.yaml file in the
// working directory. Every field has a default so the file may be absent.
type ReportConfig struct {
	// DefaultFormat is the console format used when --format is not given.
	DefaultFormat string `yaml:"default_format"`

	// Gaps configures the coverage thresholds for the gaps command.
	Gaps GapConfig `yaml:"gaps"`
}

// GapConfig holds the coverage thresholds below which gap alerts fire.
type GapConfig struct {
	// WarnBelow triggers a medium alert when a system's required coverage
	// ratio falls below it.
	WarnBelow float64 `yaml:"warn_below"`

	// CritBelow triggers a high alert instead when the ratio falls below it.
	CritBelow float64 `yaml:"crit_below"`
}

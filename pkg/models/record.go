// Package models defines the data structures shared across covgap:
// monitoring records, coverage results, and configuration.
package models

// MonitoringRecord is a single monitoring configuration entry describing
// one monitor (metric or check) attached to a system.
type MonitoringRecord struct {
	// System is the identifier of the system the monitor belongs to.
	// Always non-empty after normalization.
	System string `json:"system"`

	// Monitor names the metric or check. Always non-empty after
	// normalization.
	Monitor string `json:"monitor"`

	// Component optionally narrows the monitor to a sub-component.
	Component string `json:"component,omitempty"`

	// Required marks the monitor as mandatory for its system.
	Required bool `json:"required"`

	// Monitored reports whether the monitor is actually active.
	Monitored bool `json:"monitored"`

	Importance string `json:"importance,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Package core contains the business logic for covgap: record
// normalization, coverage analysis, gap evaluation, and configuration.
package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/valter-silva-au/covgap/pkg/models"
)

// ErrValidation marks a record that failed normalization. Callers match it
// with errors.Is.
var ErrValidation = errors.New("invalid record")

// truthyTokens and falsyTokens are the recognized boolean spellings,
// compared case-insensitively after trimming.
var (
	truthyTokens = map[string]bool{
		"true": true, "yes": true, "y": true, "1": true, "on": true, "enabled": true,
	}
	falsyTokens = map[string]bool{
		"false": true, "no": true, "n": true, "0": true, "off": true, "disabled": true,
	}
)

// Field alias chains, tried in priority order. Kept as explicit lists so the
// resolution order is auditable.
var (
	monitorKeys    = []string{"monitor", "metric"}
	componentKeys  = []string{"component", "module"}
	monitoredKeys  = []string{"monitored", "covered", "active"}
	importanceKeys = []string{"importance", "criticality"}
	notesKeys      = []string{"notes", "comment"}
)

// BoolFromValue coerces a raw input value to a boolean. Recognized truthy
// and falsy strings are matched case-insensitively; any other non-empty
// string coerces to true. This surprising fallback matches the historical
// behavior of existing data files and is kept deliberately.
func BoolFromValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		normalized := strings.ToLower(strings.TrimSpace(v))
		if truthyTokens[normalized] {
			return true
		}
		if falsyTokens[normalized] {
			return false
		}
		return v != ""
	case []interface{}:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	default:
		return true
	}
}

// stringFromValue renders a raw scalar as a trimmed string. Nil becomes the
// empty string.
func stringFromValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// firstNonEmpty resolves an alias chain to the first candidate key whose
// value renders to a non-empty string.
func firstNonEmpty(mapping map[string]interface{}, keys []string) string {
	for _, key := range keys {
		if s := stringFromValue(mapping[key]); s != "" {
			return s
		}
	}
	return ""
}

// firstPresent resolves an alias chain to the value of the first key that is
// present in the mapping, regardless of its value.
func firstPresent(mapping map[string]interface{}, keys []string) (interface{}, bool) {
	for _, key := range keys {
		if v, ok := mapping[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// NormalizeRecord converts a loosely-typed mapping (a parsed JSON object or
// a CSV row) into a canonical MonitoringRecord. It fails with an error
// wrapping ErrValidation when the system or monitor field is missing or
// empty after trimming.
func NormalizeRecord(mapping map[string]interface{}) (models.MonitoringRecord, error) {
	system := stringFromValue(mapping["system"])
	if system == "" {
		return models.MonitoringRecord{}, fmt.Errorf("%w: field 'system' must not be empty", ErrValidation)
	}

	monitor := firstNonEmpty(mapping, monitorKeys)
	if monitor == "" {
		return models.MonitoringRecord{}, fmt.Errorf("%w: field 'monitor' must not be empty", ErrValidation)
	}

	required := true
	if v, ok := mapping["required"]; ok {
		required = BoolFromValue(v)
	}

	monitored := false
	if v, ok := firstPresent(mapping, monitoredKeys); ok {
		monitored = BoolFromValue(v)
	}

	return models.MonitoringRecord{
		System:     system,
		Monitor:    monitor,
		Component:  firstNonEmpty(mapping, componentKeys),
		Required:   required,
		Monitored:  monitored,
		Importance: firstNonEmpty(mapping, importanceKeys),
		Notes:      firstNonEmpty(mapping, notesKeys),
	}, nil
}

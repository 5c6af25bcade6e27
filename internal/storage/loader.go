// Package storage reads monitoring configuration files and turns them into
// normalized records.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/valter-silva-au/covgap/internal/core"
	"github.com/valter-silva-au/covgap/pkg/models"
)

// Sentinel errors for the loader's failure taxonomy. Callers match them
// with errors.Is.
var (
	// ErrUnsupportedFormat marks an input path with an unrecognized
	// extension.
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrMalformedInput marks a parsed document whose shape is not a list
	// of records or an object with a 'records' key.
	ErrMalformedInput = errors.New("malformed input")
)

// RecordLoader reads a monitoring configuration file into normalized records.
type RecordLoader interface {
	Load(path string) ([]models.MonitoringRecord, error)
}

// fileRecordLoader implements RecordLoader for JSON, CSV, and YAML files on
// the local filesystem.
type fileRecordLoader struct{}

// NewRecordLoader creates a RecordLoader that detects the input format from
// the file extension.
func NewRecordLoader() RecordLoader {
	return &fileRecordLoader{}
}

// Load reads the file at path and returns its records in input order. The
// first record that fails normalization aborts the whole load; no partial
// result is returned.
func (l *fileRecordLoader) Load(path string) ([]models.MonitoringRecord, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("input file does not exist: %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return l.loadJSON(path)
	case ".csv":
		return l.loadCSV(path)
	case ".yaml", ".yml":
		return l.loadYAML(path)
	default:
		return nil, fmt.Errorf("%w: %s (use .json, .csv, or .yaml)", ErrUnsupportedFormat, path)
	}
}

// loadJSON parses either a bare array of record objects or an object with a
// 'records' key holding the array.
func (l *fileRecordLoader) loadJSON(path string) ([]models.MonitoringRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrMalformedInput, path, err)
	}

	return l.recordsFromDocument(doc)
}

// loadYAML accepts the same document shapes as loadJSON.
func (l *fileRecordLoader) loadYAML(path string) ([]models.MonitoringRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrMalformedInput, path, err)
	}

	return l.recordsFromDocument(doc)
}

// recordsFromDocument extracts the record list from a parsed document and
// normalizes each entry, failing fast on the first invalid record.
func (l *fileRecordLoader) recordsFromDocument(doc interface{}) ([]models.MonitoringRecord, error) {
	if obj, ok := doc.(map[string]interface{}); ok {
		if raw, found := obj["records"]; found {
			doc = raw
		}
	}

	list, ok := doc.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: input must be a list of records or have a 'records' key", ErrMalformedInput)
	}

	records := make([]models.MonitoringRecord, 0, len(list))
	for i, entry := range list {
		mapping, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: record %d is not an object", ErrMalformedInput, i)
		}
		record, err := core.NormalizeRecord(mapping)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// loadCSV treats the first row as a header and each following row as a
// mapping from header name to cell value. Ragged rows are allowed; missing
// trailing cells are treated as absent fields.
func (l *fileRecordLoader) loadCSV(path string) ([]models.MonitoringRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrMalformedInput, path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]models.MonitoringRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		mapping := make(map[string]interface{}, len(header))
		for col, name := range header {
			if col < len(row) {
				mapping[name] = row[col]
			}
		}
		record, err := core.NormalizeRecord(mapping)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, record)
	}
	return records, nil
}

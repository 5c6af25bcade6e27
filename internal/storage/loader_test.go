package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/valter-silva-au/covgap/internal/core"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoad_JSONBareList(t *testing.T) {
	path := writeInput(t, t.TempDir(), "records.json", `[
		{"system": "web", "monitor": "cpu", "required": true, "monitored": true},
		{"system": "web", "monitor": "disk", "required": true, "monitored": false}
	]`)

	records, err := NewRecordLoader().Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Monitor != "cpu" || records[1].Monitor != "disk" {
		t.Errorf("unexpected record order: %q, %q", records[0].Monitor, records[1].Monitor)
	}
	if !records[0].Monitored || records[1].Monitored {
		t.Error("monitored flags not preserved")
	}
}

func TestLoad_JSONRecordsKey(t *testing.T) {
	path := writeInput(t, t.TempDir(), "records.json",
		`{"records": [{"system": "db", "metric": "connections", "covered": "yes"}]}`)

	records, err := NewRecordLoader().Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].System != "db" || records[0].Monitor != "connections" {
		t.Errorf("aliases not resolved: %+v", records[0])
	}
	if !records[0].Monitored {
		t.Error("covered alias not coerced to monitored")
	}
}

func TestLoad_JSONMalformedShapes(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		content string
	}{
		{"scalar", `42`},
		{"object without records key", `{"items": []}`},
		{"records key not a list", `{"records": {"system": "web"}}`},
		{"list of scalars", `["web"]`},
		{"invalid json", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeInput(t, dir, "bad.json", tc.content)
			_, err := NewRecordLoader().Load(path)
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("expected ErrMalformedInput, got %v", err)
			}
		})
	}
}

func TestLoad_CSV(t *testing.T) {
	path := writeInput(t, t.TempDir(), "records.csv",
		"system,monitor,required,monitored\n"+
			"web,cpu,yes,yes\n"+
			"web,disk,yes,no\n"+
			"db,connections,no,yes\n")

	records, err := NewRecordLoader().Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1].Monitor != "disk" || records[1].Monitored {
		t.Errorf("row 2 = %+v, want disk/unmonitored", records[1])
	}
	if records[2].Required {
		t.Error("row 3 Required = true, want false")
	}
}

func TestLoad_CSVRaggedRow(t *testing.T) {
	// Missing trailing cells behave as absent fields, so required defaults
	// to true and monitored to false.
	path := writeInput(t, t.TempDir(), "records.csv",
		"system,monitor,required,monitored\n"+
			"web,cpu\n")

	records, err := NewRecordLoader().Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if !records[0].Required {
		t.Error("Required = false, want default true for absent cell")
	}
	if records[0].Monitored {
		t.Error("Monitored = true, want default false for absent cell")
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeInput(t, t.TempDir(), "records.yaml", `
records:
  - system: web
    monitor: cpu
    required: true
    monitored: true
  - system: web
    monitor: disk
    monitored: false
`)

	records, err := NewRecordLoader().Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[1].Required {
		t.Error("Required = false, want default true")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewRecordLoader().Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeInput(t, t.TempDir(), "records.txt", "system,monitor\nweb,cpu\n")

	_, err := NewRecordLoader().Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoad_ValidationFailureAbortsEntireLoad(t *testing.T) {
	path := writeInput(t, t.TempDir(), "records.json", `[
		{"system": "web", "monitor": "cpu"},
		{"monitor": "disk"}
	]`)

	records, err := NewRecordLoader().Load(path)
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if records != nil {
		t.Errorf("expected no partial result, got %d record(s)", len(records))
	}
}

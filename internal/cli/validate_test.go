package cli

import (
	"strings"
	"testing"

	"github.com/valter-silva-au/covgap/internal/storage"
)

func TestValidate_ValidFile(t *testing.T) {
	Loader = storage.NewRecordLoader()
	t.Cleanup(func() { Loader = nil; validateInput = "" })

	validateInput = writeInputFile(t, t.TempDir(), "records.json", sampleJSON)

	if err := validateCmd.RunE(validateCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidRecordFails(t *testing.T) {
	Loader = storage.NewRecordLoader()
	t.Cleanup(func() { Loader = nil; validateInput = "" })

	validateInput = writeInputFile(t, t.TempDir(), "records.json", `[{"monitor": "cpu"}]`)

	err := validateCmd.RunE(validateCmd, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "system") {
		t.Errorf("error should name the failing field: %v", err)
	}
}

func TestValidate_LoaderNotInitialized(t *testing.T) {
	Loader = nil
	if err := validateCmd.RunE(validateCmd, nil); err == nil {
		t.Fatal("expected error when loader is not wired")
	}
}

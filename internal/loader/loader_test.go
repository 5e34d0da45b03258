package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/carelane/notegen/internal/loader"
	"github.com/carelane/notegen/pkg/note"
)

func writeFieldFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFieldFile(t, "handoff.yaml", `
patient_name: Jane Smith
patient_mrn: MRN123
active_issues:
  - Pneumonia
  - Hypertension
`)

	fields, err := loader.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := map[string]note.Value{
		"patient_name":  note.Scalar("Jane Smith"),
		"patient_mrn":   note.Scalar("MRN123"),
		"active_issues": note.List("Pneumonia", "Hypertension"),
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFieldFile(t, "consult.json", `{
  "patient_name": "John Doe",
  "recommendations": ["Start ceftriaxone", "Repeat CBC"]
}`)

	fields, err := loader.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := map[string]note.Value{
		"patient_name":    note.Scalar("John Doe"),
		"recommendations": note.List("Start ceftriaxone", "Repeat CBC"),
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestLoadRejectsBadDocument(t *testing.T) {
	path := writeFieldFile(t, "bad.yaml", "vital_signs:\n  bp: 110/65\n")

	if _, err := loader.Load(path); err == nil {
		t.Fatal("mapping-shaped field value should fail")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	fields, err := loader.Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(fields) != 0 {
		t.Fatalf("empty document should yield no fields, got %v", fields)
	}
}

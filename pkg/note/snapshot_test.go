package note_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/carelane/notegen/pkg/note"
)

func TestExportSnapshot(t *testing.T) {
	handoff := note.NewHandoff(note.WithClock(stepClock(testEpoch, time.Minute)))
	handoff.SetAll(map[string]note.Value{
		"patient_name":  note.Scalar("Test Patient"),
		"active_issues": note.List("Pneumonia", "Hypertension"),
	})

	snapshot := note.Export(handoff)

	if snapshot.TemplateType != note.TypeHandoff {
		t.Fatalf("TemplateType = %q, want %q", snapshot.TemplateType, note.TypeHandoff)
	}
	if !snapshot.CreatedDate.Equal(testEpoch) {
		t.Fatalf("CreatedDate = %v, want %v", snapshot.CreatedDate, testEpoch)
	}
	if !snapshot.LastModified.Equal(testEpoch.Add(time.Minute)) {
		t.Fatalf("LastModified = %v, want %v", snapshot.LastModified, testEpoch.Add(time.Minute))
	}

	want := map[string]note.Value{
		"patient_name":  note.Scalar("Test Patient"),
		"active_issues": note.List("Pneumonia", "Hypertension"),
	}
	if diff := cmp.Diff(want, snapshot.Fields); diff != "" {
		t.Fatalf("snapshot fields mismatch (-want +got):\n%s", diff)
	}

	// later writes must not leak into the snapshot
	handoff.Set("patient_name", note.Scalar("Someone Else"))
	if diff := cmp.Diff(want, snapshot.Fields); diff != "" {
		t.Fatalf("snapshot should be isolated from later writes (-want +got):\n%s", diff)
	}
}

func TestSnapshotSerializesToJSON(t *testing.T) {
	handoff := note.NewHandoff(note.WithClock(func() time.Time { return testEpoch }))
	handoff.Set("active_issues", note.List("Pneumonia"))

	data, err := json.Marshal(note.Export(handoff))
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if decoded["template_type"] != "handoff" {
		t.Fatalf("template_type = %v, want handoff", decoded["template_type"])
	}
	fields, ok := decoded["fields"].(map[string]any)
	if !ok {
		t.Fatalf("fields missing from payload: %v", decoded)
	}
	if diff := cmp.Diff([]any{"Pneumonia"}, fields["active_issues"]); diff != "" {
		t.Fatalf("active_issues mismatch (-want +got):\n%s", diff)
	}
}

package fill_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/carelane/notegen/pkg/fill"
	"github.com/carelane/notegen/pkg/note"
)

// stubDriver answers prompts from scripted queues keyed by prompt message.
// Exhausted queues fall back to an empty answer or a declined confirm, which
// matches a user hitting enter through the remaining prompts.
type stubDriver struct {
	answers  map[string][]string
	confirms map[string][]bool
	infos    []string
	err      error
}

func (d *stubDriver) pop(message string) string {
	queue := d.answers[message]
	if len(queue) == 0 {
		return ""
	}
	d.answers[message] = queue[1:]
	return queue[0]
}

func (d *stubDriver) Input(_ context.Context, cfg fill.InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return d.pop(cfg.Message), nil
}

func (d *stubDriver) TextArea(_ context.Context, cfg fill.TextAreaConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return d.pop(cfg.Message), nil
}

func (d *stubDriver) Confirm(_ context.Context, cfg fill.ConfirmConfig) (bool, error) {
	queue := d.confirms[cfg.Message]
	if len(queue) == 0 {
		return false, nil
	}
	d.confirms[cfg.Message] = queue[1:]
	return queue[0], nil
}

func (d *stubDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestFillRequiredFields(t *testing.T) {
	driver := &stubDriver{
		answers: map[string][]string{
			"Patient name":      {"", "Jane Smith"}, // first answer empty, must re-prompt
			"Patient mrn":       {"MRN123"},
			"Patient location":  {"ICU 12"},
			"Primary diagnosis": {"Septic shock"},
			"Active issues":     {"Pneumonia", "Hypertension"},
		},
		confirms: map[string][]bool{
			"Add another entry?": {false, false, false, false, true, false},
		},
	}

	handoff := note.NewHandoff()
	filler := fill.New(fill.WithPromptDriver(driver))
	if err := filler.Fill(context.Background(), handoff); err != nil {
		t.Fatalf("fill: %v", err)
	}

	if diff := cmp.Diff([]string{"Patient name is required"}, driver.infos); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}

	ok, missing := note.Validate(handoff)
	if !ok {
		t.Fatalf("filled handoff should validate, missing = %v", missing)
	}
	if got, _ := handoff.Lookup("patient_name"); !got.Equal(note.Scalar("Jane Smith")) {
		t.Fatalf("patient_name = %v", got)
	}

	issues, _ := handoff.Lookup("active_issues")
	if !issues.IsList() {
		t.Fatal("repeated entries should produce a list value")
	}
	if diff := cmp.Diff([]string{"Pneumonia", "Hypertension"}, issues.Items()); diff != "" {
		t.Fatalf("active_issues mismatch (-want +got):\n%s", diff)
	}
}

func TestFillOptionalFields(t *testing.T) {
	driver := &stubDriver{
		answers: map[string][]string{
			"Patient name":      {"Jane Smith"},
			"Patient mrn":       {"MRN123"},
			"Patient location":  {"ICU 12"},
			"Primary diagnosis": {"Septic shock"},
			"Active issues":     {"Pneumonia"},
			"Allergies":         {"NKDA"},
			"Brief history":     {"Admitted with pneumonia, improving on antibiotics."},
		},
		confirms: map[string][]bool{
			"Fill optional fields?": {true},
		},
	}

	handoff := note.NewHandoff()
	filler := fill.New(fill.WithPromptDriver(driver))
	if err := filler.Fill(context.Background(), handoff); err != nil {
		t.Fatalf("fill: %v", err)
	}

	if got, _ := handoff.Lookup("allergies"); !got.Equal(note.Scalar("NKDA")) {
		t.Fatalf("allergies = %v", got)
	}
	// brief_history is a narrative field and is answered through the text area
	if got, ok := handoff.Lookup("brief_history"); !ok || got.IsZero() {
		t.Fatal("narrative optional field should be set from the text area answer")
	}
	if _, ok := handoff.Lookup("code_status"); ok {
		t.Fatal("optional field with an empty answer should stay unset")
	}
}

func TestFillSkipsOptionalWhenDeclined(t *testing.T) {
	driver := &stubDriver{
		answers: map[string][]string{
			"Patient name":      {"Jane Smith"},
			"Patient mrn":       {"MRN123"},
			"Patient location":  {"ICU 12"},
			"Primary diagnosis": {"Septic shock"},
			"Active issues":     {"Pneumonia"},
		},
		confirms: map[string][]bool{
			"Fill optional fields?": {false},
		},
	}

	handoff := note.NewHandoff()
	if err := fill.New(fill.WithPromptDriver(driver)).Fill(context.Background(), handoff); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if _, ok := handoff.Lookup("allergies"); ok {
		t.Fatal("optional fields must not be prompted when declined")
	}
}

func TestFillPropagatesAbort(t *testing.T) {
	driver := &stubDriver{err: fill.ErrAborted}

	err := fill.New(fill.WithPromptDriver(driver)).Fill(context.Background(), note.NewConsult())
	if !errors.Is(err, fill.ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
}

func TestFillNilTemplate(t *testing.T) {
	if err := fill.New().Fill(context.Background(), nil); err == nil {
		t.Fatal("nil template should fail")
	}
}

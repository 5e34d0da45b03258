package fill

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carelane/notegen/pkg/note"
)

// narrativeFields get a multi-line prompt; everything else is a single line.
var narrativeFields = map[string]struct{}{
	"history_of_present_illness": {},
	"reason_for_consult":         {},
	"assessment":                 {},
	"brief_history":              {},
	"physical_exam":              {},
	"operative_findings":         {},
	"description_of_procedure":   {},
	"indication":                 {},
	"follow_up_plan":             {},
	"discharge_planning":         {},
}

// Option configures the Filler.
type Option func(*Filler)

// WithPromptDriver overrides the prompt driver used by the filler.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// Filler populates a note template interactively: every required field is
// prompted until it has a value, optional fields are offered afterwards.
// Repeating an entry turns the field into a list value, so the dual
// scalar/list representation is reachable from the prompt flow.
type Filler struct {
	driver PromptDriver
}

// New constructs a Filler with the survey-backed driver by default.
func New(options ...Option) *Filler {
	f := &Filler{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Fill prompts for the template's fields in declaration order. Required
// fields re-prompt while empty; optional fields are skipped on an empty
// answer.
func (f *Filler) Fill(ctx context.Context, tmpl note.Template) error {
	if tmpl == nil {
		return errors.New("fill: template is required")
	}
	if f.driver == nil {
		return errors.New("fill: prompt driver is nil")
	}

	for _, name := range tmpl.RequiredFields() {
		if err := f.fillField(ctx, tmpl, name, true); err != nil {
			return err
		}
	}

	optional, err := f.driver.Confirm(ctx, ConfirmConfig{
		Message: "Fill optional fields?",
		Default: false,
	})
	if err != nil {
		return err
	}
	if !optional {
		return nil
	}

	for _, name := range tmpl.OptionalFields() {
		if err := f.fillField(ctx, tmpl, name, false); err != nil {
			return err
		}
	}
	return nil
}

func (f *Filler) fillField(ctx context.Context, tmpl note.Template, name string, required bool) error {
	label := humanize(name)
	var entries []string

	for {
		value, err := f.prompt(ctx, name, label)
		if err != nil {
			return err
		}
		value = strings.TrimSpace(value)

		if value == "" {
			if required && len(entries) == 0 {
				if err := f.driver.Info(ctx, fmt.Sprintf("%s is required", label)); err != nil {
					return err
				}
				continue
			}
			break
		}
		entries = append(entries, value)

		more, err := f.driver.Confirm(ctx, ConfirmConfig{
			Message: "Add another entry?",
			Default: false,
		})
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	switch len(entries) {
	case 0:
		// optional field left unset
	case 1:
		tmpl.Set(name, note.Scalar(entries[0]))
	default:
		tmpl.Set(name, note.List(entries...))
	}
	return nil
}

func (f *Filler) prompt(ctx context.Context, name, label string) (string, error) {
	if _, ok := narrativeFields[name]; ok {
		return f.driver.TextArea(ctx, TextAreaConfig{Message: label})
	}
	return f.driver.Input(ctx, InputConfig{Message: label})
}

func humanize(name string) string {
	words := strings.ReplaceAll(strings.TrimSpace(name), "_", " ")
	if words == "" {
		return name
	}
	return strings.ToUpper(words[:1]) + words[1:]
}

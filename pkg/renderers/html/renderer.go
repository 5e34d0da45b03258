package html

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/carelane/notegen/pkg/note"
	"github.com/carelane/notegen/pkg/render"
)

// Option configures the HTML renderer before construction.
type Option func(*Renderer)

// WithPolicy overrides the sanitization policy applied to field content.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// Renderer emits the note as a standalone HTML document. The document walks
// the same layout the text renderer does; field content is sanitized before
// it reaches the markup, unlike the plain-text output.
type Renderer struct {
	template *pongo2.Template
	policy   *bluemonday.Policy
}

// New constructs the HTML renderer from the embedded template bundle.
func New(options ...Option) (*Renderer, error) {
	set := pongo2.NewSet("notegen", pongo2.NewFSLoader(TemplatesFS()))
	tmpl, err := set.FromFile("templates/note.tmpl")
	if err != nil {
		return nil, fmt.Errorf("html: load note template: %w", err)
	}

	r := &Renderer{
		template: tmpl,
		policy:   fieldSanitizer(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render builds the view context from the template layout and executes the
// embedded document template.
func (r *Renderer) Render(ctx context.Context, tmpl note.Template, opts render.Options) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if tmpl == nil {
		return nil, errors.New("html: template is required")
	}

	viewContext := pongo2.Context{
		"title":  tmpl.Title(),
		"kind":   string(tmpl.Type()),
		"blocks": r.buildBlocks(tmpl, opts.Timestamp()),
	}

	var buf bytes.Buffer
	if err := r.template.ExecuteWriter(viewContext, &buf); err != nil {
		return nil, fmt.Errorf("html: execute note template: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) buildBlocks(tmpl note.Template, now time.Time) []map[string]any {
	var blocks []map[string]any
	for _, block := range tmpl.Layout() {
		switch block.Kind {
		case note.BlockGroup:
			if view := r.buildLineBlock(tmpl, block, now, "group"); view != nil {
				blocks = append(blocks, view)
			}
		case note.BlockSection:
			if view := r.buildSection(tmpl, block); view != nil {
				blocks = append(blocks, view)
			}
		case note.BlockSignature:
			if view := r.buildLineBlock(tmpl, block, now, "signature"); view != nil {
				blocks = append(blocks, view)
			}
		case note.BlockRule:
			// Banner rules are a text-output artifact; the document element
			// already bounds the HTML form.
		}
	}
	return blocks
}

func (r *Renderer) buildLineBlock(tmpl note.Template, block note.Block, now time.Time, kind string) map[string]any {
	var lines []map[string]any
	for _, line := range block.Lines {
		value, ok := r.lineValue(tmpl, line, now)
		if !ok {
			continue
		}
		lines = append(lines, map[string]any{
			"label": r.clean(line.Label),
			"value": value,
		})
	}
	if len(lines) == 0 {
		return nil
	}
	return map[string]any{
		"kind":  kind,
		"title": r.clean(block.Title),
		"lines": lines,
	}
}

func (r *Renderer) lineValue(tmpl note.Template, line note.Line, now time.Time) (string, bool) {
	if line.Stamp {
		return now.Format(render.StampLayout), true
	}
	value, _ := tmpl.Lookup(line.Field)
	if value.IsZero() {
		if !line.Required {
			return "", false
		}
		return render.Placeholder, true
	}
	return r.clean(value.Text()), true
}

func (r *Renderer) buildSection(tmpl note.Template, block note.Block) map[string]any {
	value, _ := tmpl.Lookup(block.Field)

	if value.IsList() {
		raw := value.Items()
		if len(raw) == 0 {
			return nil
		}
		items := make([]string, 0, len(raw))
		for _, item := range raw {
			items = append(items, r.clean(item))
		}
		return map[string]any{
			"kind":  "section",
			"title": r.clean(block.Title),
			"items": items,
		}
	}

	body := r.clean(value.Text())
	if body == "" {
		if !block.Required {
			return nil
		}
		body = render.Placeholder
	}
	return map[string]any{
		"kind":  "section",
		"title": r.clean(block.Title),
		"text":  strings.ReplaceAll(body, "\n", "<br>\n"),
	}
}

func (r *Renderer) clean(raw string) string {
	return sanitizeFieldText(r.policy, raw)
}

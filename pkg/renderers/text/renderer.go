package text

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carelane/notegen/pkg/note"
	"github.com/carelane/notegen/pkg/render"
)

const ruleWidth = 80

// Renderer emits the plain-text form of a note: banner rules, labeled
// header lines, titled sections, and a timestamped footer. Output is pure
// text assembly; field content is not escaped or length-limited.
type Renderer struct{}

// New constructs the text renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render walks the template's layout in order. Output is deterministic for a
// given field state and opts.Now.
func (r *Renderer) Render(ctx context.Context, tmpl note.Template, opts render.Options) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if tmpl == nil {
		return nil, errors.New("text: template is required")
	}

	now := opts.Timestamp()

	var b strings.Builder
	writeRule(&b, '=')
	b.WriteString(tmpl.Title())
	b.WriteString("\n")
	writeRule(&b, '=')
	b.WriteString("\n")

	for _, block := range tmpl.Layout() {
		switch block.Kind {
		case note.BlockGroup:
			writeGroup(&b, tmpl, block, now)
		case note.BlockSection:
			writeSection(&b, tmpl, block)
		case note.BlockSignature:
			writeSignature(&b, tmpl, block, now)
		case note.BlockRule:
			writeRule(&b, '=')
		}
	}

	return []byte(b.String()), nil
}

func writeGroup(b *strings.Builder, tmpl note.Template, block note.Block, now time.Time) {
	if block.Title != "" {
		b.WriteString(block.Title)
		b.WriteString(":\n")
	}
	for _, line := range block.Lines {
		writeLine(b, tmpl, line, now)
	}
	b.WriteString("\n")
}

// writeSection emits a titled body. The stored value's kind picks the shape:
// lists become bullets, everything else a text block. An empty list
// suppresses the whole section even for required fields; a missing or empty
// scalar renders the placeholder when the field is required and is skipped
// otherwise.
func writeSection(b *strings.Builder, tmpl note.Template, block note.Block) {
	value, _ := tmpl.Lookup(block.Field)

	if value.IsList() {
		items := value.Items()
		if len(items) == 0 {
			return
		}
		b.WriteString(block.Title)
		b.WriteString(":\n")
		for _, item := range items {
			b.WriteString("- ")
			b.WriteString(item)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		return
	}

	body := value.Text()
	if body == "" {
		if !block.Required {
			return
		}
		body = render.Placeholder
	}
	b.WriteString(block.Title)
	b.WriteString(":\n")
	b.WriteString(body)
	b.WriteString("\n\n")
}

func writeSignature(b *strings.Builder, tmpl note.Template, block note.Block, now time.Time) {
	b.WriteString("\n")
	writeRule(b, '-')
	for _, line := range block.Lines {
		writeLine(b, tmpl, line, now)
	}
}

func writeLine(b *strings.Builder, tmpl note.Template, line note.Line, now time.Time) {
	if line.Stamp {
		fmt.Fprintf(b, "%s: %s\n", line.Label, now.Format(render.StampLayout))
		return
	}
	value, _ := tmpl.Lookup(line.Field)
	if value.IsZero() {
		if !line.Required {
			return
		}
		fmt.Fprintf(b, "%s: %s\n", line.Label, render.Placeholder)
		return
	}
	fmt.Fprintf(b, "%s: %s\n", line.Label, value.Text())
}

func writeRule(b *strings.Builder, ch byte) {
	b.WriteString(strings.Repeat(string(ch), ruleWidth))
	b.WriteString("\n")
}

package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/carelane/notegen/pkg/note"
	"github.com/carelane/notegen/pkg/render"
)

const (
	titleFontSize   = 16
	headingFontSize = 11
	bodyFontSize    = 10
	lineHeight      = 5.0
	headingHeight   = 6.0
)

// Renderer emits the note as a single-column A4 PDF. Layout semantics match
// the text renderer: required fields fall back to the placeholder marker,
// optional fields are skipped, list values become bulleted lines.
type Renderer struct{}

// New constructs the PDF renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "pdf"
}

func (r *Renderer) ContentType() string {
	return "application/pdf"
}

func (r *Renderer) Render(ctx context.Context, tmpl note.Template, opts render.Options) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if tmpl == nil {
		return nil, errors.New("pdf: template is required")
	}

	now := opts.Timestamp()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", titleFontSize)
	doc.CellFormat(0, 10, tmpl.Title(), "", 1, "C", false, 0, "")
	doc.Ln(4)

	for _, block := range tmpl.Layout() {
		switch block.Kind {
		case note.BlockGroup:
			writeLineBlock(doc, tmpl, block, now)
		case note.BlockSection:
			writeSection(doc, tmpl, block)
		case note.BlockSignature:
			doc.Ln(4)
			writeLineBlock(doc, tmpl, block, now)
		case note.BlockRule:
			// Page chrome stands in for the closing rule.
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: write document: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLineBlock(doc *gofpdf.Fpdf, tmpl note.Template, block note.Block, now time.Time) {
	wrote := false
	if block.Title != "" {
		writeHeading(doc, block.Title)
		wrote = true
	}
	doc.SetFont("Helvetica", "", bodyFontSize)
	for _, line := range block.Lines {
		value, ok := lineValue(tmpl, line, now)
		if !ok {
			continue
		}
		doc.CellFormat(0, lineHeight, line.Label+": "+value, "", 1, "L", false, 0, "")
		wrote = true
	}
	if wrote {
		doc.Ln(3)
	}
}

func lineValue(tmpl note.Template, line note.Line, now time.Time) (string, bool) {
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
	return value.Text(), true
}

func writeSection(doc *gofpdf.Fpdf, tmpl note.Template, block note.Block) {
	value, _ := tmpl.Lookup(block.Field)

	if value.IsList() {
		items := value.Items()
		if len(items) == 0 {
			return
		}
		writeHeading(doc, block.Title)
		doc.SetFont("Helvetica", "", bodyFontSize)
		for _, item := range items {
			doc.MultiCell(0, lineHeight, "- "+item, "", "L", false)
		}
		doc.Ln(3)
		return
	}

	body := value.Text()
	if body == "" {
		if !block.Required {
			return
		}
		body = render.Placeholder
	}
	writeHeading(doc, block.Title)
	doc.SetFont("Helvetica", "", bodyFontSize)
	doc.MultiCell(0, lineHeight, body, "", "L", false)
	doc.Ln(3)
}

func writeHeading(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", headingFontSize)
	doc.CellFormat(0, headingHeight, title, "", 1, "L", false, 0, "")
}

package render

import (
	"context"
	"time"

	"github.com/carelane/notegen/pkg/note"
)

const (
	// Placeholder marks a required field with no usable value.
	Placeholder = "[NOT PROVIDED]"
	// StampLayout formats the render-time timestamps stamped into headers
	// and signature blocks.
	StampLayout = "2006-01-02 15:04"
)

// Options carries per-render settings shared by every renderer.
type Options struct {
	// Now is the timestamp stamped into signature and handoff header lines.
	// Zero means the wall clock at render time; tests pin it for
	// deterministic output.
	Now time.Time
}

// Timestamp resolves the render time.
func (o Options) Timestamp() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// Renderer converts a populated note template into a byte representation
// (plain text, HTML, PDF).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, tmpl note.Template, opts Options) ([]byte, error)
}

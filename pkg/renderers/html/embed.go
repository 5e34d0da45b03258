package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can reuse or
// extend the built-in note markup.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carelane/notegen/internal/loader"
	"github.com/carelane/notegen/pkg/fill"
	"github.com/carelane/notegen/pkg/note"
	"github.com/carelane/notegen/pkg/render"
	htmlrenderer "github.com/carelane/notegen/pkg/renderers/html"
	pdfrenderer "github.com/carelane/notegen/pkg/renderers/pdf"
	textrenderer "github.com/carelane/notegen/pkg/renderers/text"
)

func main() {
	noteType := flag.String("type", "consult", "note type ("+strings.Join(note.TypeNames(), ", ")+")")
	dataPath := flag.String("data", "", "field data file (YAML or JSON)")
	rendererName := flag.String("renderer", "text", "renderer to use")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("fill", false, "prompt for field values interactively")
	flag.Parse()

	ctx := context.Background()

	tmpl, err := note.New(*noteType)
	if err != nil {
		log.Fatalf("Failed to create template: %v", err)
	}

	if *dataPath != "" {
		fields, err := loader.Load(*dataPath)
		if err != nil {
			log.Fatalf("Failed to load field data: %v", err)
		}
		tmpl.SetAll(fields)
	}

	if *interactive {
		if err := fill.New().Fill(ctx, tmpl); err != nil {
			log.Fatalf("Failed to fill template: %v", err)
		}
	}

	if ok, missing := note.Validate(tmpl); !ok {
		fmt.Fprintf(os.Stderr, "Warning: missing required fields: %s\n", strings.Join(missing, ", "))
	}

	registry := newRegistry()
	renderer, err := registry.Get(*rendererName)
	if err != nil {
		log.Fatalf("Failed to resolve renderer: %v", err)
	}

	rendered, err := renderer.Render(ctx, tmpl, render.Options{})
	if err != nil {
		log.Fatalf("Failed to render note: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Note written to %s\n", *output)
		return
	}
	os.Stdout.Write(rendered)
}

func newRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(textrenderer.New())
	registry.MustRegister(pdfrenderer.New())

	html, err := htmlrenderer.New()
	if err != nil {
		log.Fatalf("Failed to configure HTML renderer: %v", err)
	}
	registry.MustRegister(html)
	return registry
}

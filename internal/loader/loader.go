// Package loader reads note field data from YAML or JSON documents. JSON
// parses as a YAML subset, so a single decode path covers both.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carelane/notegen/pkg/note"
)

// Load reads and parses a field-data file into a field mapping suitable for
// Template.SetAll. Scalar entries become scalar values, sequences become
// list values.
func Load(path string) (map[string]note.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read field data %q: %w", path, err)
	}
	fields, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loader: parse field data %q: %w", path, err)
	}
	return fields, nil
}

// Parse decodes a field-data document from memory.
func Parse(data []byte) (map[string]note.Value, error) {
	fields := make(map[string]note.Value)
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

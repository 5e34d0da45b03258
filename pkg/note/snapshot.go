package note

import "time"

// Snapshot is the serializable view of a template: the variant tag, both
// lifecycle timestamps, and a copy of the field mapping. It carries json and
// yaml tags so callers can hand it straight to an encoder.
type Snapshot struct {
	TemplateType Type             `json:"template_type" yaml:"template_type"`
	CreatedDate  time.Time        `json:"created_date" yaml:"created_date"`
	LastModified time.Time        `json:"last_modified" yaml:"last_modified"`
	Fields       map[string]Value `json:"fields" yaml:"fields"`
}

// Export produces a snapshot of the template's current state. The field
// mapping is copied; later writes to the template do not leak into it.
func Export(t Template) Snapshot {
	return Snapshot{
		TemplateType: t.Type(),
		CreatedDate:  t.Created(),
		LastModified: t.Modified(),
		Fields:       t.FieldMap(),
	}
}

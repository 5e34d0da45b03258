package note

import "time"

// Type identifies a note template variant.
type Type string

const (
	TypeConsult   Type = "consult"
	TypeHandoff   Type = "handoff"
	TypeOperative Type = "operative"
)

// FieldAccessor is the store contract every template exposes. *FieldStore
// satisfies it; variants embed a store to inherit the implementation.
type FieldAccessor interface {
	Set(name string, value Value)
	SetAll(values map[string]Value)
	Lookup(name string) (Value, bool)
	GetOr(name string, fallback Value) Value
	Reset()
	FieldMap() map[string]Value
	Created() time.Time
	Modified() time.Time
}

// Template is a note variant: a field store plus the variant's fixed
// contract — which fields are required, which are optional, and the ordered
// document layout renderers walk.
type Template interface {
	FieldAccessor

	// Type reports the variant tag used by the factory and in exports.
	Type() Type
	// Title is the banner heading of the rendered document.
	Title() string
	// RequiredFields lists required field names in declaration order.
	RequiredFields() []string
	// OptionalFields lists optional field names in declaration order.
	OptionalFields() []string
	// Layout describes the variant's document as an ordered block sequence.
	Layout() []Block
}

// Validate checks every required field against the store. A field is missing
// when it is absent or holds a zero value (empty string or empty list).
// The missing slice preserves declaration order.
func Validate(t Template) (bool, []string) {
	var missing []string
	for _, name := range t.RequiredFields() {
		value, ok := t.Lookup(name)
		if !ok || value.IsZero() {
			missing = append(missing, name)
		}
	}
	return len(missing) == 0, missing
}

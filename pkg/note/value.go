package note

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValueKind discriminates the two representations a field value can take.
type ValueKind string

const (
	// ValueScalar holds a single block of text.
	ValueScalar ValueKind = "scalar"
	// ValueList holds an ordered sequence of entries.
	ValueList ValueKind = "list"
)

// Value is the tagged union stored for every note field. A field may hold
// either free text or an ordered list of entries; renderers branch on the
// kind so both shapes stay statically handled. The zero Value is an empty
// scalar.
type Value struct {
	kind  ValueKind
	text  string
	items []string
}

// Scalar wraps a block of text as a field value.
func Scalar(text string) Value {
	return Value{kind: ValueScalar, text: text}
}

// List wraps an ordered sequence of entries as a field value.
func List(items ...string) Value {
	copied := make([]string, len(items))
	copy(copied, items)
	return Value{kind: ValueList, items: copied}
}

// Kind reports the representation held by the value.
func (v Value) Kind() ValueKind {
	if v.kind == "" {
		return ValueScalar
	}
	return v.kind
}

// IsList reports whether the value holds a sequence of entries.
func (v Value) IsList() bool {
	return v.kind == ValueList
}

// IsZero reports whether the value counts as missing: an empty string for
// scalars, an empty sequence for lists.
func (v Value) IsZero() bool {
	if v.kind == ValueList {
		return len(v.items) == 0
	}
	return v.text == ""
}

// Text returns the scalar text. List values collapse to a comma-joined
// string so callers that expect a single line never see the raw slice.
func (v Value) Text() string {
	if v.kind == ValueList {
		return strings.Join(v.items, ", ")
	}
	return v.text
}

// Items returns a copy of the list entries. Scalar values return nil.
func (v Value) Items() []string {
	if v.kind != ValueList {
		return nil
	}
	copied := make([]string, len(v.items))
	copy(copied, v.items)
	return copied
}

// Equal reports whether two values hold the same representation and
// content. go-cmp picks this up in tests.
func (v Value) Equal(other Value) bool {
	if v.IsList() != other.IsList() {
		return false
	}
	if v.IsList() {
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if v.items[i] != other.items[i] {
				return false
			}
		}
		return true
	}
	return v.text == other.text
}

// MarshalJSON emits scalars as strings and lists as arrays so exported
// snapshots round-trip through standard interchange formats.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == ValueList {
		return json.Marshal(v.items)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts either a string or an array of strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = Scalar(text)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*v = List(items...)
		return nil
	}
	return fmt.Errorf("note: field value must be a string or a list of strings, got %s", strings.TrimSpace(string(data)))
}

// MarshalYAML mirrors the JSON representation for YAML documents.
func (v Value) MarshalYAML() (any, error) {
	if v.kind == ValueList {
		return v.items, nil
	}
	return v.text, nil
}

// UnmarshalYAML accepts either a scalar node or a sequence of scalars.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var text string
		if err := node.Decode(&text); err != nil {
			return err
		}
		*v = Scalar(text)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*v = List(items...)
		return nil
	default:
		return fmt.Errorf("note: field value must be a string or a list of strings (line %d)", node.Line)
	}
}

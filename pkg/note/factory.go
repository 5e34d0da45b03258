package note

import (
	"fmt"
	"sort"
	"strings"
)

var constructors = map[Type]func(...StoreOption) Template{
	TypeConsult:   func(options ...StoreOption) Template { return NewConsult(options...) },
	TypeHandoff:   func(options ...StoreOption) Template { return NewHandoff(options...) },
	TypeOperative: func(options ...StoreOption) Template { return NewOperative(options...) },
}

// New constructs a template by variant name. Lookup is case-insensitive.
// Unrecognized names fail with an error listing the valid set.
func New(name string, options ...StoreOption) (Template, error) {
	key := Type(strings.ToLower(strings.TrimSpace(name)))
	ctor, ok := constructors[key]
	if !ok {
		return nil, fmt.Errorf("note: unknown template type %q (valid types: %s)", name, strings.Join(TypeNames(), ", "))
	}
	return ctor(options...), nil
}

// TypeNames returns the sorted list of registered variant names.
func TypeNames() []string {
	names := make([]string, 0, len(constructors))
	for t := range constructors {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

package note

import "time"

// StoreOption configures a FieldStore at construction time.
type StoreOption func(*FieldStore)

// WithClock overrides the wall clock used for creation/modification
// timestamps. Tests inject a fixed or stepping clock here.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *FieldStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// FieldStore owns the field mapping and lifecycle timestamps shared by every
// template variant. Variants compose a store rather than inheriting from a
// base type; all mutation goes through it so the modified timestamp stays
// accurate.
type FieldStore struct {
	fields   map[string]Value
	created  time.Time
	modified time.Time
	clock    func() time.Time
}

// NewFieldStore creates an empty store stamped with the current clock.
func NewFieldStore(options ...StoreOption) *FieldStore {
	s := &FieldStore{
		fields: make(map[string]Value),
		clock:  time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	now := s.clock()
	s.created = now
	s.modified = now
	return s
}

// Set upserts a single field and bumps the modified timestamp.
func (s *FieldStore) Set(name string, value Value) {
	s.fields[name] = value
	s.modified = s.clock()
}

// SetAll upserts every entry in values with a single timestamp update.
func (s *FieldStore) SetAll(values map[string]Value) {
	for name, value := range values {
		s.fields[name] = value
	}
	s.modified = s.clock()
}

// Lookup returns the stored value and whether the field is present.
func (s *FieldStore) Lookup(name string) (Value, bool) {
	value, ok := s.fields[name]
	return value, ok
}

// GetOr returns the stored value, or fallback when the field is absent.
func (s *FieldStore) GetOr(name string, fallback Value) Value {
	if value, ok := s.fields[name]; ok {
		return value
	}
	return fallback
}

// Reset clears every field and bumps the modified timestamp. The creation
// timestamp is preserved.
func (s *FieldStore) Reset() {
	s.fields = make(map[string]Value)
	s.modified = s.clock()
}

// FieldMap returns a copy of the field mapping.
func (s *FieldStore) FieldMap() map[string]Value {
	copied := make(map[string]Value, len(s.fields))
	for name, value := range s.fields {
		copied[name] = value
	}
	return copied
}

// Created reports when the store was constructed.
func (s *FieldStore) Created() time.Time {
	return s.created
}

// Modified reports the last field write (or reset).
func (s *FieldStore) Modified() time.Time {
	return s.modified
}

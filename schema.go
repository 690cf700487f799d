package datacanvas

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FieldMapping is one projection rule: the mapped record's Target field is
// filled from the raw record's Source field.
type FieldMapping struct {
	Target string
	Source string
}

// MappingSchema is an ordered target-field to source-field correspondence.
// It is immutable after construction and fixed for a session's lifetime.
//
// Rules are applied in declaration order, so every mapped record carries the
// schema's targets in the same order. Source fields may repeat across rules
// (several targets drawing from one source). A repeated target is last-wins:
// the later rule's source replaces the earlier one's, at the earlier rule's
// position.
type MappingSchema struct {
	rules *orderedmap.OrderedMap[string, string]
}

// NewMappingSchema builds a schema from rules, applied in order.
func NewMappingSchema(rules ...FieldMapping) *MappingSchema {
	m := orderedmap.New[string, string](len(rules))
	for _, r := range rules {
		m.Set(r.Target, r.Source)
	}
	return &MappingSchema{rules: m}
}

// ParseMappingSchema builds a schema from JSON text of the form
// {"target": "source", ...}, preserving the object's key order. Returns
// [ErrMalformedInput] if the text is not valid JSON, is not an object, or
// maps a target to a non-string value.
func ParseMappingSchema(text string) (*MappingSchema, error) {
	m := orderedmap.New[string, string]()
	if err := m.UnmarshalJSON([]byte(text)); err != nil {
		return nil, fmt.Errorf("parse mapping schema: %w: %v", ErrMalformedInput, err)
	}
	return &MappingSchema{rules: m}, nil
}

// LoadMappingSchemaFile reads a JSON schema file and parses it with
// ParseMappingSchema. Returns [ErrSourceNotFound] or [ErrSourceUnreadable]
// on filesystem failure.
func LoadMappingSchemaFile(path string) (*MappingSchema, error) {
	data, err := readSourceFile(path)
	if err != nil {
		return nil, fmt.Errorf("load mapping schema: %w", err)
	}
	return ParseMappingSchema(string(data))
}

// Len returns the number of rules.
func (s *MappingSchema) Len() int {
	if s == nil || s.rules == nil {
		return 0
	}
	return s.rules.Len()
}

// Targets returns the target field names in schema order.
func (s *MappingSchema) Targets() []string {
	if s == nil || s.rules == nil {
		return nil
	}
	targets := make([]string, 0, s.rules.Len())
	for pair := s.rules.Oldest(); pair != nil; pair = pair.Next() {
		targets = append(targets, pair.Key)
	}
	return targets
}

// SourceField returns the source field a target draws from.
func (s *MappingSchema) SourceField(target string) (string, bool) {
	if s == nil || s.rules == nil {
		return "", false
	}
	return s.rules.Get(target)
}

// Rules returns the schema as a rule slice in schema order.
func (s *MappingSchema) Rules() []FieldMapping {
	if s == nil || s.rules == nil {
		return nil
	}
	rules := make([]FieldMapping, 0, s.rules.Len())
	for pair := s.rules.Oldest(); pair != nil; pair = pair.Next() {
		rules = append(rules, FieldMapping{Target: pair.Key, Source: pair.Value})
	}
	return rules
}

// MarshalJSON encodes the schema as a JSON object in schema order, the same
// form ParseMappingSchema accepts.
func (s *MappingSchema) MarshalJSON() ([]byte, error) {
	if s == nil || s.rules == nil {
		return []byte("{}"), nil
	}
	return s.rules.MarshalJSON()
}

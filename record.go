package datacanvas

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is one flat row of data: an insertion-ordered mapping from field
// name to scalar value. Values are held verbatim as any (string for
// delimited input; string, float64, bool, or nil for JSON input). Field
// order is the order fields were set, which for loaded data is the source's
// own field order.
//
// Setting an existing field overwrites its value but keeps its original
// position.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
}

// Dataset is an ordered sequence of records. It is the shape of both the raw
// (as-loaded) and mapped (projected) state of a [Session].
type Dataset []*Record

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: orderedmap.New[string, any]()}
}

// Set stores a field value, appending the field if new. Returns the record
// for chaining:
//
//	rec := datacanvas.NewRecord().Set("id", 1).Set("name", "Ann")
func (r *Record) Set(field string, value any) *Record {
	if r.fields == nil {
		r.fields = orderedmap.New[string, any]()
	}
	r.fields.Set(field, value)
	return r
}

// Get returns the value of a field and whether the field is present. A
// present field holding the nil sentinel returns (nil, true).
func (r *Record) Get(field string) (any, bool) {
	if r == nil || r.fields == nil {
		return nil, false
	}
	return r.fields.Get(field)
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil || r.fields == nil {
		return 0
	}
	return r.fields.Len()
}

// Fields returns the field names in insertion order.
func (r *Record) Fields() []string {
	if r == nil || r.fields == nil {
		return nil
	}
	names := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// AsMap returns the record as a plain Go map. Field order is lost; use
// Fields alongside when order matters.
func (r *Record) AsMap() map[string]any {
	if r == nil || r.fields == nil {
		return map[string]any{}
	}
	m := make(map[string]any, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key] = pair.Value
	}
	return m
}

// MarshalJSON encodes the record as a JSON object with fields in insertion
// order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r.fields == nil {
		return []byte("{}"), nil
	}
	return r.fields.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, preserving its key order. Anything
// other than an object is an error.
func (r *Record) UnmarshalJSON(data []byte) error {
	if r.fields == nil {
		r.fields = orderedmap.New[string, any]()
	}
	return r.fields.UnmarshalJSON(data)
}

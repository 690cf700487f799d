package datacanvas

import "fmt"

// project builds the mapped dataset: one output record per raw record, each
// carrying exactly the schema's targets in schema order. A source field
// present in the raw record is copied verbatim, with no type coercion. An
// absent source field becomes the nil sentinel and a missing-field warning —
// projection never fails. Callers with a required-field contract must check
// the output themselves.
func (s *Session) project(raw Dataset) Dataset {
	rules := s.schema.Rules()

	out := make(Dataset, 0, len(raw))
	for i, rec := range raw {
		mapped := NewRecord()
		for _, rule := range rules {
			value, ok := rec.Get(rule.Source)
			if !ok {
				value = nil
				s.stats.fieldsMissing++
				s.warnMap(Warning{
					Code:        WarnMissingField,
					Row:         i,
					SourceField: rule.Source,
					TargetField: rule.Target,
					Message:     fmt.Sprintf("record %d has no field %q for target %q", i, rule.Source, rule.Target),
				})
			}
			mapped.Set(rule.Target, value)
		}
		out = append(out, mapped)
	}
	return out
}

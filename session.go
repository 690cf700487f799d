package datacanvas

import (
	"fmt"
	"log/slog"
)

// DefaultDelimiter is the field delimiter used by the delimited file kinds
// when WithDelimiter is not called.
const DefaultDelimiter = ','

// Session owns one load/map lifecycle: the raw dataset produced by the most
// recent Load, the mapped dataset produced by the most recent Map, and the
// diagnostics both accumulated. The mapping schema is fixed at construction.
//
// Load discards all prior state before parsing; on a fatal load error the
// session is left empty, never partially populated. Map recomputes the
// projection from the current raw state on every call.
//
// A Session is not safe for concurrent use. Callers needing shared access
// must serialize Load/Map externally.
type Session struct {
	schema *MappingSchema

	// Configuration overrides (chainable, resolved against defaults)
	delimiter rune
	logger    *slog.Logger
	sink      WarningSink

	raw    Dataset
	mapped Dataset

	loadWarnings []Warning
	mapWarnings  []Warning
	stats        Stats
}

// New creates a Session with the given schema. A nil schema is treated as
// empty (every mapped record will have zero fields).
func New(schema *MappingSchema) *Session {
	if schema == nil {
		schema = NewMappingSchema()
	}
	return &Session{
		schema:    schema,
		delimiter: DefaultDelimiter,
	}
}

// WithDelimiter overrides the field delimiter for the delimited-file and
// line-delimited-file kinds. The zero rune is ignored.
func (s *Session) WithDelimiter(d rune) *Session {
	if d != 0 {
		s.delimiter = d
	}
	return s
}

// WithLogger overrides the logger that receives non-fatal warnings.
// Defaults to slog.Default(). A nil logger is ignored.
func (s *Session) WithLogger(logger *slog.Logger) *Session {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithWarningSink registers a sink that receives every non-fatal warning as
// it is emitted, in addition to the logger and the Warnings accessor.
func (s *Session) WithWarningSink(sink WarningSink) *Session {
	s.sink = sink
	return s
}

// Schema returns the session's fixed mapping schema.
func (s *Session) Schema() *MappingSchema {
	return s.schema
}

// Load ingests a source and replaces the session's raw dataset with the
// result. Prior raw and mapped state is discarded whether or not the load
// succeeds: after an error the session is empty.
//
// The source's expected Go type depends on kind; see the [SourceKind]
// constants. Failure modes: [ErrUnsupportedSourceKind],
// [ErrInvalidSourceArgument], [ErrSourceNotFound], [ErrSourceUnreadable],
// [ErrMalformedInput], [ErrInvalidRecordShape].
//
// Malformed rows in the file kinds are skipped with a [WarnRowSkipped]
// warning, not errors. The record-collection kind is stricter: a single
// non-keyed element fails the whole call with ErrInvalidRecordShape.
func (s *Session) Load(kind SourceKind, source any) error {
	s.reset()

	k, ok := parseSourceKind(kind)
	if !ok {
		return fmt.Errorf("load: %w: %q", ErrUnsupportedSourceKind, string(kind))
	}

	ds, err := loaders[k](s, source)
	if err != nil {
		return fmt.Errorf("load %s: %w", k, err)
	}

	s.raw = ds
	s.stats.recordsLoaded = int64(len(ds))
	return nil
}

// Map projects the current raw dataset onto the schema and returns the
// result. The output has exactly one record per raw record, in the same
// order; every output record carries exactly the schema's targets, in schema
// order. A missing source field yields the nil sentinel plus a
// [WarnMissingField] warning — never an error.
//
// Map recomputes from scratch on every call and replaces the session's
// mapped state (and the prior call's missing-field warnings).
func (s *Session) Map() Dataset {
	s.mapWarnings = s.mapWarnings[:0]
	s.stats.fieldsMissing = 0

	s.mapped = s.project(s.raw)
	s.stats.recordsMapped = int64(len(s.mapped))
	return s.mapped
}

// InputData returns the current raw dataset, as produced by the most recent
// successful Load. Treat it as read-only.
func (s *Session) InputData() Dataset {
	return s.raw
}

// MappedData returns the mapped dataset from the most recent Map call, or
// nil if Map has not been called since the last Load.
func (s *Session) MappedData() Dataset {
	return s.mapped
}

// Warnings returns the non-fatal warnings from the most recent Load followed
// by those from the most recent Map.
func (s *Session) Warnings() []Warning {
	out := make([]Warning, 0, len(s.loadWarnings)+len(s.mapWarnings))
	out = append(out, s.loadWarnings...)
	out = append(out, s.mapWarnings...)
	return out
}

// Stats returns the session's counters. The snapshot is only stable between
// Load/Map calls.
func (s *Session) Stats() *Stats {
	return &s.stats
}

// reset discards raw and mapped state, warnings, and counters. Called at the
// top of every Load so that a failed load leaves the session empty.
func (s *Session) reset() {
	s.raw = nil
	s.mapped = nil
	s.loadWarnings = s.loadWarnings[:0]
	s.mapWarnings = s.mapWarnings[:0]
	s.stats = Stats{}
}

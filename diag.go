package datacanvas

import (
	"fmt"
	"log/slog"
)

// WarningCode classifies a non-fatal condition.
type WarningCode string

const (
	// WarnRowSkipped reports a data row dropped during a file load because
	// its field count did not match the header (or it failed to parse).
	WarnRowSkipped WarningCode = "row-skipped"

	// WarnMissingField reports a schema source field absent from a record
	// during projection; the target got the nil sentinel.
	WarnMissingField WarningCode = "missing-field"
)

// Warning is one non-fatal diagnostic. Warnings never abort a load or a
// projection; they are collected on the session (see [Session.Warnings]),
// logged, and forwarded to the configured [WarningSink].
type Warning struct {
	Code WarningCode

	// Row locates the warning: for WarnRowSkipped it is the 1-based data
	// row number (the header is row 0); for WarnMissingField it is the
	// 0-based record index in the raw dataset.
	Row int

	// SourceField and TargetField name the schema rule involved. Both are
	// empty for WarnRowSkipped.
	SourceField string
	TargetField string

	Message string
}

// LogValue implements slog.LogValuer for structured logging.
func (w Warning) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", string(w.Code)),
		slog.Int("row", w.Row),
	}
	if w.SourceField != "" {
		attrs = append(attrs, slog.String("source_field", w.SourceField))
	}
	if w.TargetField != "" {
		attrs = append(attrs, slog.String("target_field", w.TargetField))
	}
	return slog.GroupValue(attrs...)
}

// WarningSink receives each warning as it is emitted. Implement it to feed
// warnings into metrics, a collector, or a test assertion.
type WarningSink interface {
	OnWarning(w Warning)
}

// WarningSinkFunc adapts a plain function to the [WarningSink] interface.
//
// Example:
//
//	var missing int
//	sess.WithWarningSink(datacanvas.WarningSinkFunc(func(w datacanvas.Warning) {
//	    if w.Code == datacanvas.WarnMissingField {
//	        missing++
//	    }
//	}))
type WarningSinkFunc func(w Warning)

func (f WarningSinkFunc) OnWarning(w Warning) {
	f(w)
}

// skipRow records a dropped data row during a file load.
func (s *Session) skipRow(row int, message string) {
	s.stats.rowsSkipped++
	s.warnLoad(Warning{Code: WarnRowSkipped, Row: row, Message: message})
}

func (s *Session) warnLoad(w Warning) {
	s.loadWarnings = append(s.loadWarnings, w)
	s.emit(w)
}

func (s *Session) warnMap(w Warning) {
	s.mapWarnings = append(s.mapWarnings, w)
	s.emit(w)
}

func (s *Session) emit(w Warning) {
	s.log().Warn(w.Message, "warning", w)
	if s.sink != nil {
		s.sink.OnWarning(w)
	}
}

func (s *Session) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// String returns a short human-readable form, e.g. for test failures.
func (w Warning) String() string {
	return fmt.Sprintf("%s (row %d): %s", w.Code, w.Row, w.Message)
}

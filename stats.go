package datacanvas

import (
	"encoding/json"
	"log/slog"
)

// Stats holds a session's counters. Load resets every counter; each Map call
// resets the mapped/missing counters before recomputing. Plain fields, no
// synchronization: the session is single-caller by contract.
type Stats struct {
	rowsRead      int64
	rowsSkipped   int64
	recordsLoaded int64
	recordsMapped int64
	fieldsMissing int64
}

// NewStats creates a Stats with initial counter values. Mostly useful for
// comparing against Session.Stats in tests.
func NewStats(rowsRead, rowsSkipped, recordsLoaded, recordsMapped, fieldsMissing int64) *Stats {
	return &Stats{
		rowsRead:      rowsRead,
		rowsSkipped:   rowsSkipped,
		recordsLoaded: recordsLoaded,
		recordsMapped: recordsMapped,
		fieldsMissing: fieldsMissing,
	}
}

// RowsRead returns the number of data rows seen during the last file load
// (excluding the header). Zero for the json and record-collection kinds.
func (s *Stats) RowsRead() int64 { return s.rowsRead }

// RowsSkipped returns the number of data rows dropped during the last load.
func (s *Stats) RowsSkipped() int64 { return s.rowsSkipped }

// RecordsLoaded returns the size of the raw dataset.
func (s *Stats) RecordsLoaded() int64 { return s.recordsLoaded }

// RecordsMapped returns the size of the mapped dataset.
func (s *Stats) RecordsMapped() int64 { return s.recordsMapped }

// FieldsMissing returns the number of nil-sentinel substitutions made during
// the last Map call.
func (s *Stats) FieldsMissing() int64 { return s.fieldsMissing }

// LogValue implements slog.LogValuer for structured logging.
func (s *Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("rows_read", s.RowsRead()),
		slog.Int64("rows_skipped", s.RowsSkipped()),
		slog.Int64("records_loaded", s.RecordsLoaded()),
		slog.Int64("records_mapped", s.RecordsMapped()),
		slog.Int64("fields_missing", s.FieldsMissing()),
	)
}

// statsJSON is the JSON representation for marshaling/unmarshaling Stats.
type statsJSON struct {
	RowsRead      int64 `json:"rows_read"`
	RowsSkipped   int64 `json:"rows_skipped"`
	RecordsLoaded int64 `json:"records_loaded"`
	RecordsMapped int64 `json:"records_mapped"`
	FieldsMissing int64 `json:"fields_missing"`
}

// MarshalJSON implements json.Marshaler for Stats serialization.
func (s *Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(statsJSON{
		RowsRead:      s.rowsRead,
		RowsSkipped:   s.rowsSkipped,
		RecordsLoaded: s.recordsLoaded,
		RecordsMapped: s.recordsMapped,
		FieldsMissing: s.fieldsMissing,
	})
}

// UnmarshalJSON implements json.Unmarshaler for Stats deserialization.
func (s *Stats) UnmarshalJSON(data []byte) error {
	var v statsJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.rowsRead = v.RowsRead
	s.rowsSkipped = v.RowsSkipped
	s.recordsLoaded = v.RecordsLoaded
	s.recordsMapped = v.RecordsMapped
	s.fieldsMissing = v.FieldsMissing
	return nil
}

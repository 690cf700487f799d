package datacanvas

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// loadDelimitedFile parses a header-rowed delimited file. The whole file
// goes through one csv.Reader, so quoted fields may span lines. A data row
// whose field count differs from the header's (or that fails to parse) is
// skipped with a warning.
func (s *Session) loadDelimitedFile(source any) (Dataset, error) {
	path, ok := source.(string)
	if !ok {
		return nil, fmt.Errorf("%w: want a file path string, got %T", ErrInvalidSourceArgument, source)
	}

	content, err := readSourceFile(path)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.Comma = s.delimiter
	r.FieldsPerRecord = -1 // row widths checked against the header ourselves

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: missing or malformed header row: %v", ErrSourceUnreadable, path, err)
	}

	ds := Dataset{}
	for row := 1; ; row++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		s.stats.rowsRead++
		if err != nil {
			s.skipRow(row, fmt.Sprintf("row %d: %v", row, err))
			continue
		}
		if len(fields) != len(header) {
			s.skipRow(row, fmt.Sprintf("row %d has %d fields, header has %d", row, len(fields), len(header)))
			continue
		}
		ds = append(ds, zipRecord(header, fields))
	}
	return ds, nil
}

// loadLineDelimitedFile parses a text file line by line: blank lines are
// discarded, the first remaining line is the header, and each line is split
// independently with the same CSV quoting as loadDelimitedFile (so a quoted
// field cannot span lines). An empty file yields an empty dataset.
func (s *Session) loadLineDelimitedFile(source any) (Dataset, error) {
	path, ok := source.(string)
	if !ok {
		return nil, fmt.Errorf("%w: want a file path string, got %T", ErrInvalidSourceArgument, source)
	}

	content, err := readSourceFile(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return Dataset{}, nil
	}

	header, err := splitLine(lines[0], s.delimiter)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: malformed header line: %v", ErrSourceUnreadable, path, err)
	}

	ds := Dataset{}
	for row, line := range lines[1:] {
		s.stats.rowsRead++
		fields, err := splitLine(line, s.delimiter)
		if err != nil {
			s.skipRow(row+1, fmt.Sprintf("row %d: %v", row+1, err))
			continue
		}
		if len(fields) != len(header) {
			s.skipRow(row+1, fmt.Sprintf("row %d has %d fields, header has %d", row+1, len(fields), len(header)))
			continue
		}
		ds = append(ds, zipRecord(header, fields))
	}
	return ds, nil
}

// loadJSON ingests JSON: if the source string names an existing file its
// content is the JSON text, otherwise the string itself is. The decoded
// value must be an array of objects or a single object.
func (s *Session) loadJSON(source any) (Dataset, error) {
	text, ok := source.(string)
	if !ok {
		return nil, fmt.Errorf("%w: want a file path or inline JSON string, got %T", ErrInvalidSourceArgument, source)
	}

	data := []byte(text)
	if info, err := os.Stat(text); err == nil && !info.IsDir() {
		data, err = os.ReadFile(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, text, err)
		}
	}
	return decodeJSONDataset(data)
}

// loadRecordCollection passes through an in-memory record sequence. Unlike
// the file kinds there is no per-row recovery: the first element that is not
// a keyed record fails the whole call.
func (s *Session) loadRecordCollection(source any) (Dataset, error) {
	switch records := source.(type) {
	case Dataset:
		return slices.Clone(records), nil
	case []*Record:
		return Dataset(slices.Clone(records)), nil
	case []map[string]any:
		ds := make(Dataset, 0, len(records))
		for _, m := range records {
			ds = append(ds, recordFromMap(m))
		}
		return ds, nil
	case []any:
		ds := make(Dataset, 0, len(records))
		for i, elem := range records {
			rec, err := coerceRecord(elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			ds = append(ds, rec)
		}
		return ds, nil
	default:
		return nil, fmt.Errorf("%w: want a slice of records, got %T", ErrInvalidSourceArgument, source)
	}
}

// readSourceFile reads a file-backed source, translating filesystem failures
// into the error taxonomy: a path that does not resolve is ErrSourceNotFound,
// anything else (including a directory) is ErrSourceUnreadable.
func readSourceFile(path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}
	return data, nil
}

// decodeJSONDataset decodes JSON text into a dataset: an array becomes one
// record per element, a single object becomes a one-record dataset, anything
// else is malformed.
func decodeJSONDataset(data []byte) (Dataset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty JSON input", ErrMalformedInput)
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		ds := make(Dataset, 0, len(elems))
		for i, raw := range elems {
			rec := NewRecord()
			if err := rec.UnmarshalJSON(raw); err != nil {
				return nil, fmt.Errorf("%w: element %d is not an object: %v", ErrMalformedInput, i, err)
			}
			ds = append(ds, rec)
		}
		return ds, nil
	case '{':
		rec := NewRecord()
		if err := rec.UnmarshalJSON(trimmed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return Dataset{rec}, nil
	default:
		// Distinguish a syntax error from a well-formed scalar; both are
		// malformed for our purposes but the message differs.
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return nil, fmt.Errorf("%w: JSON value is neither an array nor an object", ErrMalformedInput)
	}
}

// splitLine splits one line into fields with CSV quoting.
func splitLine(line string, delim rune) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = delim
	r.FieldsPerRecord = -1
	return r.Read()
}

// zipRecord pairs header names with row fields positionally. Callers have
// already checked the widths match.
func zipRecord(header, fields []string) *Record {
	rec := NewRecord()
	for i, name := range header {
		rec.Set(name, fields[i])
	}
	return rec
}

// coerceRecord converts one record-collection element, rejecting anything
// that is not a keyed record (a plain slice, a scalar, a nil record).
func coerceRecord(elem any) (*Record, error) {
	switch v := elem.(type) {
	case *Record:
		if v == nil {
			return nil, fmt.Errorf("%w: nil record", ErrInvalidRecordShape)
		}
		return v, nil
	case map[string]any:
		return recordFromMap(v), nil
	default:
		return nil, fmt.Errorf("%w: want a keyed record, got %T", ErrInvalidRecordShape, elem)
	}
}

// recordFromMap converts a plain Go map into a record. Go maps have no
// iteration order, so keys are sorted to keep the record deterministic.
func recordFromMap(m map[string]any) *Record {
	rec := NewRecord()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		rec.Set(k, m[k])
	}
	return rec
}

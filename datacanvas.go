package datacanvas

import "strings"

// SourceKind identifies an ingestion strategy. The set is closed: Load fails
// with [ErrUnsupportedSourceKind] for any other value. Kind matching is
// case-insensitive and ignores surrounding whitespace.
type SourceKind string

const (
	// SourceDelimitedFile reads a delimited text file whose first row is the
	// header. Fields follow standard CSV quoting.
	SourceDelimitedFile SourceKind = "delimited-file"

	// SourceJSON reads a JSON array of objects, or a single object (wrapped
	// into a one-record dataset). The source is a file path if one exists,
	// otherwise the source string itself is the JSON text.
	SourceJSON SourceKind = "json"

	// SourceLineDelimitedFile reads a text file line by line, discarding
	// blank lines. The first remaining line is the header.
	SourceLineDelimitedFile SourceKind = "line-delimited-file"

	// SourceRecordCollection ingests an in-memory slice of records with no
	// parsing. Accepted shapes: Dataset, []*Record, []map[string]any, or
	// []any whose elements are keyed records.
	SourceRecordCollection SourceKind = "record-collection"
)

// loaders maps each kind to its ingestion function. Adding a kind means
// adding a constant above, an entry here, and nothing else.
var loaders = map[SourceKind]func(*Session, any) (Dataset, error){
	SourceDelimitedFile:     (*Session).loadDelimitedFile,
	SourceJSON:              (*Session).loadJSON,
	SourceLineDelimitedFile: (*Session).loadLineDelimitedFile,
	SourceRecordCollection:  (*Session).loadRecordCollection,
}

// parseSourceKind normalizes a kind value against the closed set.
func parseSourceKind(kind SourceKind) (SourceKind, bool) {
	k := SourceKind(strings.ToLower(strings.TrimSpace(string(kind))))
	switch k {
	case SourceDelimitedFile, SourceJSON, SourceLineDelimitedFile, SourceRecordCollection:
		return k, true
	}
	return "", false
}

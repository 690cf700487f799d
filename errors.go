package datacanvas

import "errors"

// Sentinel errors returned (wrapped) by Load and the schema constructors.
// Match with errors.Is; the wrapped message carries the offending kind, path,
// or element detail.
//
// Per-row conditions (column-count mismatch, missing source field during
// projection) are never errors. They surface as [Warning] values instead.
var (
	// ErrUnsupportedSourceKind reports a kind value outside the closed
	// SourceKind set.
	ErrUnsupportedSourceKind = errors.New("unsupported source kind")

	// ErrInvalidSourceArgument reports a source value whose Go type does not
	// match what the kind requires (e.g. a non-string for a file kind).
	ErrInvalidSourceArgument = errors.New("invalid source argument")

	// ErrSourceNotFound reports a file path that does not resolve.
	ErrSourceNotFound = errors.New("source not found")

	// ErrSourceUnreadable reports a file that exists but cannot be read, or
	// a header row that is absent or unparsable.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrMalformedInput reports a JSON syntax error, or JSON that decoded to
	// a shape that is neither an array of objects nor a single object.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidRecordShape reports a record-collection element that is not
	// a keyed record. Unlike the file kinds' per-row skip policy, this
	// aborts the whole load.
	ErrInvalidRecordShape = errors.New("invalid record shape")
)

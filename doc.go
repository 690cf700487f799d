// Package datacanvas re-projects tabular and record-oriented data from
// heterogeneous sources onto a caller-specified target schema.
//
// Many upstream producers, one downstream shape: a session loads records from
// delimited text, JSON, line-delimited text, or an in-memory collection into
// a uniform ordered-record representation, then maps each record onto the
// target field names declared by a [MappingSchema].
//
// # Quick Start
//
// Fix the schema at construction, load a source, map it:
//
//	schema := datacanvas.NewMappingSchema(
//	    datacanvas.FieldMapping{Target: "out_id", Source: "id"},
//	    datacanvas.FieldMapping{Target: "out_name", Source: "name"},
//	)
//
//	sess := datacanvas.New(schema)
//	if err := sess.Load(datacanvas.SourceDelimitedFile, "users.csv"); err != nil {
//	    return err
//	}
//	for _, rec := range sess.Map() {
//	    name, _ := rec.Get("out_name")
//	    fmt.Println(name)
//	}
//
// The schema can also come straight from JSON text, preserving key order:
//
//	schema, err := datacanvas.ParseMappingSchema(`{"out_id": "id", "out_name": "name"}`)
//
// # Source Kinds
//
// Load dispatches on a closed set of [SourceKind] values:
//
//   - [SourceDelimitedFile]: a delimited file with a header row, standard CSV
//     quoting, configurable delimiter (WithDelimiter).
//   - [SourceJSON]: a file path or inline text holding a JSON array of
//     objects, or a single object (loaded as a one-record dataset).
//   - [SourceLineDelimitedFile]: like SourceDelimitedFile, but parsed line by
//     line with blank lines discarded, so quoted fields cannot span lines.
//   - [SourceRecordCollection]: an in-memory slice of records, no parsing.
//
// Every Load fully replaces the session's state. Mapped data is derived: it
// is recomputed by each Map call and discarded by each Load.
//
// # Warnings, Not Errors
//
// Row-level problems do not abort a load. A data row whose field count does
// not match the header is dropped with a [WarnRowSkipped] warning; a schema
// source field absent from a record is mapped to the nil sentinel with a
// [WarnMissingField] warning. Warnings are collected on the session for
// deterministic assertions (Warnings), logged through slog, and optionally
// forwarded to a [WarningSink].
//
// The one deliberate exception is the record-collection kind: an element
// that is not a keyed record fails the whole load with
// [ErrInvalidRecordShape] rather than being skipped.
//
// # Errors
//
// Fatal conditions are sentinel errors matched with errors.Is:
//
//	err := sess.Load(datacanvas.SourceDelimitedFile, "missing.csv")
//	if errors.Is(err, datacanvas.ErrSourceNotFound) {
//	    // ...
//	}
//
// After any failed Load the session is empty, never partially populated.
//
// # Concurrency
//
// A Session is not safe for concurrent use: Load and Map mutate shared
// state. Wrap the session with a mutex if multiple goroutines must share it.
package datacanvas

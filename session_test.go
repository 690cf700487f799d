package datacanvas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	datacanvas "github.com/waghbhaskar/data-canvas"
)

// =============================================================================
// Lifecycle
// =============================================================================

func TestSession_LoadReplacesPriorState(t *testing.T) {
	schema := datacanvas.NewMappingSchema(
		datacanvas.FieldMapping{Target: "x", Source: "a"},
	)
	sess := newSession(schema)

	require.NoError(t, sess.Load(datacanvas.SourceJSON, `[{"a":1,"old":true}]`))
	mapped := sess.Map()
	require.Len(t, mapped, 1)

	// Second load with a different kind/source fully discards the first.
	require.NoError(t, sess.Load(datacanvas.SourceRecordCollection, []any{
		map[string]any{"a": "fresh"},
		map[string]any{"a": "rows"},
	}))

	require.Len(t, sess.InputData(), 2)
	for _, rec := range sess.InputData() {
		_, ok := rec.Get("old")
		require.False(t, ok)
	}

	// Mapped state is derived, so it is discarded too until Map runs again.
	require.Nil(t, sess.MappedData())
	require.Len(t, sess.Map(), 2)
}

func TestSession_FailedLoadLeavesSessionEmpty(t *testing.T) {
	sess := newSession(nil)
	require.NoError(t, sess.Load(datacanvas.SourceJSON, `[{"a":1}]`))
	require.Len(t, sess.InputData(), 1)

	err := sess.Load(datacanvas.SourceRecordCollection, []any{[]any{"list"}})
	require.ErrorIs(t, err, datacanvas.ErrInvalidRecordShape)

	// Reverts to empty rather than keeping the previous dataset.
	require.Empty(t, sess.InputData())
	require.Empty(t, sess.MappedData())
	require.Empty(t, sess.Warnings())
}

func TestSession_MappedDataSnapshot(t *testing.T) {
	schema := datacanvas.NewMappingSchema(
		datacanvas.FieldMapping{Target: "x", Source: "a"},
	)
	sess := newSession(schema)
	require.NoError(t, sess.Load(datacanvas.SourceJSON, `[{"a":1}]`))

	require.Nil(t, sess.MappedData())
	mapped := sess.Map()
	require.Equal(t, datasetJSON(t, mapped), datasetJSON(t, sess.MappedData()))
}

func TestSession_NilSchema(t *testing.T) {
	sess := newSession(nil)
	require.NotNil(t, sess.Schema())
	require.Zero(t, sess.Schema().Len())
}

// =============================================================================
// Diagnostics
// =============================================================================

func TestSession_WarningsCombineLoadAndMap(t *testing.T) {
	path := writeFile(t, "ragged.csv", "id,name\n1,Ann\n2\n")

	schema := datacanvas.NewMappingSchema(
		datacanvas.FieldMapping{Target: "x", Source: "missing"},
	)
	sess := newSession(schema)
	require.NoError(t, sess.Load(datacanvas.SourceDelimitedFile, path))
	sess.Map()

	warnings := sess.Warnings()
	require.Len(t, warnings, 2)
	require.Equal(t, datacanvas.WarnRowSkipped, warnings[0].Code)
	require.Equal(t, datacanvas.WarnMissingField, warnings[1].Code)
}

func TestSession_WarningSinkReceivesEachWarning(t *testing.T) {
	var seen []datacanvas.Warning
	sink := datacanvas.WarningSinkFunc(func(w datacanvas.Warning) {
		seen = append(seen, w)
	})

	schema := datacanvas.NewMappingSchema(
		datacanvas.FieldMapping{Target: "x", Source: "missing"},
	)
	sess := newSession(schema).WithWarningSink(sink)
	require.NoError(t, sess.Load(datacanvas.SourceJSON, `[{"a":1},{"a":2}]`))
	sess.Map()

	require.Len(t, seen, 2)
	require.Equal(t, datacanvas.WarnMissingField, seen[0].Code)
	require.Equal(t, "missing", seen[0].SourceField)
}

func TestSession_StatsAcrossLoadAndMap(t *testing.T) {
	path := writeFile(t, "ragged.csv", "id,name\n1,Ann\n2\n3,Bob\n")

	schema := datacanvas.NewMappingSchema(
		datacanvas.FieldMapping{Target: "out_id", Source: "id"},
		datacanvas.FieldMapping{Target: "out_gone", Source: "gone"},
	)
	sess := newSession(schema)
	require.NoError(t, sess.Load(datacanvas.SourceDelimitedFile, path))
	sess.Map()

	stats := sess.Stats()
	require.Equal(t, int64(3), stats.RowsRead())
	require.Equal(t, int64(1), stats.RowsSkipped())
	require.Equal(t, int64(2), stats.RecordsLoaded())
	require.Equal(t, int64(2), stats.RecordsMapped())
	require.Equal(t, int64(2), stats.FieldsMissing())
}

// =============================================================================
// Configuration
// =============================================================================

func TestSession_WithDelimiterIgnoresZeroRune(t *testing.T) {
	path := writeFile(t, "semi.csv", "id;name\n1;Ann\n")

	sess := newSession(nil).WithDelimiter(';').WithDelimiter(0)
	require.NoError(t, sess.Load(datacanvas.SourceDelimitedFile, path))
	require.Equal(t, []string{"id", "name"}, sess.InputData()[0].Fields())
}

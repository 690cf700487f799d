package datacanvas_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	datacanvas "github.com/waghbhaskar/data-canvas"
)

func TestNewMappingSchema_Order(t *testing.T) {
	schema := datacanvas.NewMappingSchema(
		datacanvas.FieldMapping{Target: "z", Source: "1"},
		datacanvas.FieldMapping{Target: "a", Source: "2"},
		datacanvas.FieldMapping{Target: "m", Source: "3"},
	)

	require.Equal(t, 3, schema.Len())
	require.Equal(t, []string{"z", "a", "m"}, schema.Targets())

	src, ok := schema.SourceField("a")
	require.True(t, ok)
	require.Equal(t, "2", src)

	_, ok = schema.SourceField("nope")
	require.False(t, ok)
}

func TestNewMappingSchema_DuplicateTargetLastWins(t *testing.T) {
	schema := datacanvas.NewMappingSchema(
		datacanvas.FieldMapping{Target: "x", Source: "first"},
		datacanvas.FieldMapping{Target: "y", Source: "other"},
		datacanvas.FieldMapping{Target: "x", Source: "second"},
	)

	// Later rule's source wins, at the earlier rule's position.
	require.Equal(t, []string{"x", "y"}, schema.Targets())
	src, _ := schema.SourceField("x")
	require.Equal(t, "second", src)
}

func TestParseMappingSchema(t *testing.T) {
	schema, err := datacanvas.ParseMappingSchema(`{"out_id": "id", "out_name": "name"}`)
	require.NoError(t, err)
	require.Equal(t, []string{"out_id", "out_name"}, schema.Targets())
	require.Equal(t, []datacanvas.FieldMapping{
		{Target: "out_id", Source: "id"},
		{Target: "out_name", Source: "name"},
	}, schema.Rules())
}

func TestParseMappingSchema_SyntaxError(t *testing.T) {
	_, err := datacanvas.ParseMappingSchema(`{"a": `)
	require.ErrorIs(t, err, datacanvas.ErrMalformedInput)
}

func TestParseMappingSchema_NotAnObject(t *testing.T) {
	_, err := datacanvas.ParseMappingSchema(`["a", "b"]`)
	require.ErrorIs(t, err, datacanvas.ErrMalformedInput)
}

func TestParseMappingSchema_NonStringValue(t *testing.T) {
	_, err := datacanvas.ParseMappingSchema(`{"a": 1}`)
	require.ErrorIs(t, err, datacanvas.ErrMalformedInput)
}

func TestLoadMappingSchemaFile(t *testing.T) {
	path := writeFile(t, "schema.json", `{"x": "a"}`)

	schema, err := datacanvas.LoadMappingSchemaFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, schema.Targets())
}

func TestLoadMappingSchemaFile_NotFound(t *testing.T) {
	_, err := datacanvas.LoadMappingSchemaFile(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, datacanvas.ErrSourceNotFound)
}

func TestMappingSchema_MarshalJSON(t *testing.T) {
	schema := datacanvas.NewMappingSchema(
		datacanvas.FieldMapping{Target: "b", Source: "2"},
		datacanvas.FieldMapping{Target: "a", Source: "1"},
	)

	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"b":"2","a":"1"}`, string(data))
}

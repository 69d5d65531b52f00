package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaListing(t *testing.T) {
	schema := Schema(SchemaListing)
	require.NotNil(t, schema)
	require.NotNil(t, schema.Properties)

	_, ok := schema.Properties.Get("skills")
	assert.True(t, ok)
	_, ok = schema.Properties.Get("mcps")
	assert.True(t, ok)
}

func TestSchemaDetailIncludesRawContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSchema(&buf, SchemaDetail))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Contains(t, buf.String(), `"skill"`)
	assert.Contains(t, buf.String(), `"mcp"`)
	assert.Contains(t, buf.String(), `"raw_content"`)
	assert.Contains(t, buf.String(), `"start_matter"`)
}

func TestWriteSchemaUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSchema(&buf, SchemaKind("nope"))

	var unknown *UnknownSchemaError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Kind)
	assert.Equal(t, "unknown schema 'nope' (supported: listing, detail)", err.Error())
	assert.Empty(t, buf.String())
}

func TestSchemaKindsAreAllDescribed(t *testing.T) {
	assert.Equal(t, []string{"listing", "detail"}, SchemaKindNames())
	for _, kind := range SchemaKinds {
		assert.NotNil(t, Schema(kind), kind)
	}
}

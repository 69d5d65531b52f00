package output

import (
	"io"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/jingkaihe/claudelist/pkg/catalog"
)

// SchemaKind names a JSON document produced by the JSON formatter.
type SchemaKind string

const (
	SchemaListing SchemaKind = "listing"
	SchemaDetail  SchemaKind = "detail"
)

// SchemaKinds lists the documents Schema can describe.
var SchemaKinds = []SchemaKind{SchemaListing, SchemaDetail}

// SchemaKindNames returns SchemaKinds as plain strings.
func SchemaKindNames() []string {
	names := make([]string, 0, len(SchemaKinds))
	for _, kind := range SchemaKinds {
		names = append(names, string(kind))
	}
	return names
}

// GenerateSchema reflects the JSON schema of T with every definition inlined.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T

	return reflector.Reflect(v)
}

// Schema returns the schema of the JSON document named kind, or nil when
// kind is unknown.
func Schema(kind SchemaKind) *jsonschema.Schema {
	switch kind {
	case SchemaListing:
		return GenerateSchema[catalog.Listing]()
	case SchemaDetail:
		return GenerateSchema[rawDetail]()
	default:
		return nil
	}
}

// WriteSchema writes the indented schema of kind to w.
func WriteSchema(w io.Writer, kind SchemaKind) error {
	schema := Schema(kind)
	if schema == nil {
		return &UnknownSchemaError{Kind: string(kind)}
	}
	return writeJSON(w, schema)
}

// UnknownSchemaError is returned for a schema kind WriteSchema cannot describe.
type UnknownSchemaError struct {
	Kind string
}

func (e *UnknownSchemaError) Error() string {
	return "unknown schema '" + e.Kind + "' (supported: " + strings.Join(SchemaKindNames(), ", ") + ")"
}

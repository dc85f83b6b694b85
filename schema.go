package ordantic

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/goccy/go-json"
)

// DefaultMetaSchema is the meta-schema URI reported by Describe.
const DefaultMetaSchema = "http://json-schema.org/draft-07/schema#"

// PlaceholderTitle is the title Summary reports for every model.
const PlaceholderTitle = "ExampleModel"

const (
	componentsPrefix  = "#/components/schemas/"
	definitionsPrefix = "#/definitions/"
)

// SchemaDoc is a structural description of a model type.
type SchemaDoc struct {
	// MetaSchema is the meta-schema URI; empty when not supplied.
	MetaSchema string
	// Title is the model type name.
	Title string
	// Root describes the model itself.
	Root *openapi3.Schema
	// Definitions holds named sub-schemas referenced from Root.
	Definitions openapi3.Schemas
}

// Describe generates the description of a named-field model from a value of
// its type. Failures are reported as ErrSerialize.
func Describe(title string, v any) (*SchemaDoc, error) {
	defs := openapi3.Schemas{}

	ref, err := openapi3gen.NewSchemaRefForValue(v, defs, openapi3gen.CreateComponentSchemas(
		openapi3gen.ExportComponentSchemasOptions{ExportComponentSchemas: true}))
	if err != nil {
		return nil, newError(MsgSerialize, fmt.Errorf("describe %s: %w", title, err))
	}

	root := ref.Value
	if root == nil {
		root = lookupRef(defs, ref.Ref)
	}

	if root == nil {
		return nil, newError(MsgSerialize, fmt.Errorf("describe %s: no schema generated", title))
	}

	return newSchemaDoc(title, root, defs), nil
}

// DescribeTuple generates the description of a positional model from one
// value per field: a fixed-length array whose items match any field schema.
func DescribeTuple(title string, values ...any) (*SchemaDoc, error) {
	defs := openapi3.Schemas{}
	elems := make([]*openapi3.Schema, 0, len(values))

	for i, v := range values {
		ref, err := openapi3gen.NewSchemaRefForValue(v, defs, openapi3gen.CreateComponentSchemas(
			openapi3gen.ExportComponentSchemasOptions{ExportComponentSchemas: true}))
		if err != nil {
			return nil, newError(MsgSerialize, fmt.Errorf("describe %s element %d: %w", title, i, err))
		}

		elem := ref.Value
		if ref.Ref != "" {
			elem = &openapi3.Schema{}
			elem.AllOf = openapi3.SchemaRefs{openapi3.NewSchemaRef(ref.Ref, nil)}
		}

		if elem == nil {
			return nil, newError(MsgSerialize, fmt.Errorf("describe %s element %d: no schema generated", title, i))
		}

		elems = append(elems, elem)
	}

	n := uint64(len(values))
	root := openapi3.NewArraySchema()
	root.MinItems = n
	root.MaxItems = &n
	root.Items = openapi3.NewSchemaRef("", openapi3.NewAnyOfSchema(elems...))

	return newSchemaDoc(title, root, defs), nil
}

func newSchemaDoc(title string, root *openapi3.Schema, defs openapi3.Schemas) *SchemaDoc {
	rewriteRefs(root, make(map[*openapi3.Schema]bool))
	for _, def := range defs {
		if def != nil {
			def.Ref = rewriteRef(def.Ref)
			rewriteRefs(def.Value, make(map[*openapi3.Schema]bool))
		}
	}

	return &SchemaDoc{
		MetaSchema:  DefaultMetaSchema,
		Title:       title,
		Root:        root,
		Definitions: defs,
	}
}

func lookupRef(defs openapi3.Schemas, ref string) *openapi3.Schema {
	if def, ok := defs[strings.TrimPrefix(ref, componentsPrefix)]; ok && def != nil {
		return def.Value
	}

	return nil
}

// rewriteRefs points component references at the document's definitions.
func rewriteRefs(s *openapi3.Schema, seen map[*openapi3.Schema]bool) {
	if s == nil || seen[s] {
		return
	}

	seen[s] = true

	visit := func(ref *openapi3.SchemaRef) {
		if ref == nil {
			return
		}

		ref.Ref = rewriteRef(ref.Ref)
		rewriteRefs(ref.Value, seen)
	}

	for _, p := range s.Properties {
		visit(p)
	}

	visit(s.Items)
	visit(s.Not)

	for _, group := range []openapi3.SchemaRefs{s.AllOf, s.AnyOf, s.OneOf} {
		for _, ref := range group {
			visit(ref)
		}
	}
}

func rewriteRef(ref string) string {
	if name, ok := strings.CutPrefix(ref, componentsPrefix); ok {
		return definitionsPrefix + name
	}

	return ref
}

// Summary returns the top-level mapping of the description: "$schema" when
// a meta-schema is known, the placeholder title and type "object". Field
// definitions are not included.
func (d *SchemaDoc) Summary() map[string]any {
	out := make(map[string]any, 3)
	if d.MetaSchema != "" {
		out["$schema"] = d.MetaSchema
	}

	out["title"] = PlaceholderTitle
	out["type"] = "object"

	return out
}

// MarshalJSON renders the full description: the root schema keywords,
// "$schema", "title" and, when present, "definitions". Title overrides any
// title of the root schema.
func (d *SchemaDoc) MarshalJSON() ([]byte, error) {
	out := make(map[string]any)

	if d.Root != nil {
		root, err := json.Marshal(d.Root)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(root, &out); err != nil {
			return nil, err
		}
	}

	if d.MetaSchema != "" {
		out["$schema"] = d.MetaSchema
	}

	out["title"] = d.Title

	if len(d.Definitions) > 0 {
		defs := make(map[string]*openapi3.Schema, len(d.Definitions))
		for name, def := range d.Definitions {
			if def != nil {
				defs[name] = def.Value
			}
		}

		out["definitions"] = defs
	}

	return json.Marshal(out)
}

// Text renders the description as JSON text, failing with ErrSerialize.
func (d *SchemaDoc) Text() (string, error) {
	return Encode(d)
}

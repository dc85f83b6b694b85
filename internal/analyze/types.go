package analyze

import (
	"go/ast"
	"go/token"
	"reflect"
	"strings"
)

// Directive marks a type declaration for model generation.
const Directive = "//ordantic:model"

//go:generate go tool stringer -type=Variant -trimprefix=Variant -output=variant_string.go

// Variant is the field-structure variant of a model.
type Variant int

const (
	VariantUnknown    Variant = iota
	VariantNamed              // fields addressed by identifier
	VariantPositional         // embedded fields addressed by ordinal position
)

// Model is a classified model declaration.
type Model struct {
	Name    string         // declared type name
	PkgPath string         // import path of the declaring package (empty for single files)
	PkgName string         // package clause name
	Variant Variant        // field-structure variant
	Fields  []Field        // fields in declaration order
	Imports []Import       // imports referenced by field types
	Pos     token.Position // declaration position
}

// NamedFields reports whether fields are addressed by identifier.
func (m *Model) NamedFields() bool {
	return m.Variant == VariantNamed
}

// Field describes one model field.
type Field struct {
	// Name is the selector used to reach the field. For positional fields it
	// is the implicit name of the embedded type (string, Time for time.Time).
	Name string
	// Type is the source form of the field type ("int64", "*time.Time").
	Type string
	// Index is the field position in the struct.
	Index int
	// Tag is the raw struct tag.
	Tag reflect.StructTag
	// Expr is the type expression as parsed.
	Expr ast.Expr `json:"-"`
}

// Exported reports whether the field is reachable outside its package.
func (f *Field) Exported() bool {
	return token.IsExported(f.Name)
}

// JSONName returns the JSON tag name if present, otherwise the field name.
func (f *Field) JSONName() string {
	if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			return name
		}
	}

	return f.Name
}

// Skipped reports whether encoding/json style tags exclude the field.
func (f *Field) Skipped() bool {
	return f.Tag.Get("json") == "-"
}

// Import is a package import required by a field type.
type Import struct {
	Name string // explicit alias, empty when the default name is used
	Path string
}

// Package groups the models found in one Go package.
type Package struct {
	Path   string
	Name   string
	Dir    string
	Models []*Model
}

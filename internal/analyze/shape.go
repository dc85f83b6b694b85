package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"

	"ordantic/internal/common"
	"ordantic/internal/diagnostic"
)

// Classification messages.
const (
	msgOnlyStructs      = "only structs are supported"
	msgOnlyNamedOrTuple = "only named or positional fields are supported"
	msgNoGenerics       = "generic types are not supported"
	msgUnexported       = "named fields must be exported, %s is not"
)

// Analyze classifies a type declaration. It returns a *diagnostic.Diagnostic
// when the declaration shape is unsupported.
func Analyze(fset *token.FileSet, spec *ast.TypeSpec) (*Model, error) {
	pos := fset.Position(spec.Pos())
	name := spec.Name.Name

	st, ok := spec.Type.(*ast.StructType)
	if !ok || spec.Assign.IsValid() {
		return nil, diagnostic.NewError(diagnostic.CodeNotStruct, msgOnlyStructs, name, pos)
	}

	if spec.TypeParams != nil && spec.TypeParams.NumFields() > 0 {
		return nil, diagnostic.NewError(diagnostic.CodeGeneric, msgNoGenerics, name, pos)
	}

	variant := classify(st.Fields)
	if variant == VariantUnknown {
		return nil, diagnostic.NewError(diagnostic.CodeUnsupportedShape, msgOnlyNamedOrTuple, name, pos)
	}

	model := &Model{
		Name:    name,
		Variant: variant,
		Pos:     pos,
	}

	for _, f := range st.Fields.List {
		var tag reflect.StructTag
		if f.Tag != nil {
			tag = reflect.StructTag(common.Unquote(f.Tag.Value))
		}

		if variant == VariantPositional {
			model.Fields = append(model.Fields, Field{
				Name:  embeddedName(f.Type),
				Type:  types.ExprString(f.Type),
				Index: len(model.Fields),
				Tag:   tag,
				Expr:  f.Type,
			})

			continue
		}

		// "A, B int" declares two fields sharing one type.
		for _, ident := range f.Names {
			// The JSON codec cannot see unexported fields.
			if ident.Name != "_" && !token.IsExported(ident.Name) {
				return nil, diagnostic.NewError(diagnostic.CodeUnexportedField,
					fmt.Sprintf(msgUnexported, ident.Name), name, fset.Position(ident.Pos()))
			}

			model.Fields = append(model.Fields, Field{
				Name:  ident.Name,
				Type:  types.ExprString(f.Type),
				Index: len(model.Fields),
				Tag:   tag,
				Expr:  f.Type,
			})
		}
	}

	return model, nil
}

// classify returns the variant of a struct field list, or VariantUnknown for
// unit structs and mixed named/embedded fields.
func classify(fields *ast.FieldList) Variant {
	if fields == nil || len(fields.List) == 0 {
		return VariantUnknown
	}

	var named, embedded int
	for _, f := range fields.List {
		if len(f.Names) == 0 {
			embedded++
		} else {
			named++
		}
	}

	switch {
	case embedded == 0:
		return VariantNamed
	case named == 0:
		return VariantPositional
	default:
		return VariantUnknown
	}
}

// embeddedName returns the implicit field name of an embedded type:
// T, *T, pkg.T and T[Args] are all named T.
func embeddedName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return embeddedName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(e.X)
	case *ast.IndexListExpr:
		return embeddedName(e.X)
	case *ast.ParenExpr:
		return embeddedName(e.X)
	default:
		return types.ExprString(expr)
	}
}

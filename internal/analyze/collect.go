package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"slices"
	"strings"

	"ordantic/internal/common"
	"ordantic/internal/diagnostic"
)

const msgSkipped = `field %s is tagged json:"-": it is a constructor argument but is lost by JSON and Dict`

// Selector decides which type declarations are models.
type Selector struct {
	// Names lists type names that are models even without the directive.
	Names []string
}

// Selected reports whether spec (declared in decl) should be processed.
func (s Selector) Selected(decl *ast.GenDecl, spec *ast.TypeSpec) bool {
	if slices.Contains(s.Names, spec.Name.Name) {
		return true
	}

	return hasDirective(spec.Doc) || (len(decl.Specs) == 1 && hasDirective(decl.Doc))
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		text := strings.TrimSpace(c.Text)
		if text == Directive || strings.HasPrefix(text, Directive+" ") {
			return true
		}
	}

	return false
}

// CollectFile analyzes every selected type declaration of a parsed file.
// Each declaration is handled independently: a rejected declaration adds a
// diagnostic and does not prevent the others from being returned.
func CollectFile(fset *token.FileSet, file *ast.File, sel Selector) ([]*Model, diagnostic.Diagnostics) {
	var (
		models []*Model
		diags  diagnostic.Diagnostics
	)

	for _, d := range file.Decls {
		decl, ok := d.(*ast.GenDecl)
		if !ok || decl.Tok != token.TYPE {
			continue
		}

		for _, s := range decl.Specs {
			spec, ok := s.(*ast.TypeSpec)
			if !ok || !sel.Selected(decl, spec) {
				continue
			}

			model, err := Analyze(fset, spec)
			if err != nil {
				if diag, ok := err.(*diagnostic.Diagnostic); ok {
					diags.Add(*diag)
				} else {
					diags.AddError(diagnostic.CodeUnsupportedShape, err.Error(), spec.Name.Name, fset.Position(spec.Pos()))
				}

				continue
			}

			if model.NamedFields() {
				for _, f := range model.Fields {
					if f.Name != "_" && f.Skipped() {
						diags.AddWarning(diagnostic.CodeSkippedField,
							fmt.Sprintf(msgSkipped, f.Name), model.Name, model.Pos)
					}
				}
			}

			model.PkgName = file.Name.Name
			model.Imports = referencedImports(file, model.Fields)
			models = append(models, model)
		}
	}

	return models, diags
}

// DeclaredTypes returns the names of all type declarations of a file.
func DeclaredTypes(file *ast.File) []string {
	var names []string

	for _, d := range file.Decls {
		decl, ok := d.(*ast.GenDecl)
		if !ok || decl.Tok != token.TYPE {
			continue
		}

		for _, s := range decl.Specs {
			if spec, ok := s.(*ast.TypeSpec); ok {
				names = append(names, spec.Name.Name)
			}
		}
	}

	return names
}

// referencedImports returns the file imports used by qualified identifiers in
// the field types, in first-use order.
func referencedImports(file *ast.File, fields []Field) []Import {
	byName := make(map[string]Import, len(file.Imports))
	for _, spec := range file.Imports {
		path := common.Unquote(spec.Path.Value)
		imp := Import{Path: path}
		name := common.PkgAlias(path)

		if spec.Name != nil {
			if spec.Name.Name == "_" || spec.Name.Name == "." {
				continue
			}

			imp.Name = spec.Name.Name
			name = spec.Name.Name
		}

		byName[name] = imp
	}

	var used []Import
	for _, f := range fields {
		ast.Inspect(f.Expr, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			if x, ok := sel.X.(*ast.Ident); ok {
				if imp, ok := byName[x.Name]; ok {
					used = append(used, imp)
				}
			}

			return false
		})
	}

	return common.Dedupe(used)
}

// Package analyze implements the shape analyzer.
//
// It reads struct declarations (go/ast, loaded through
// golang.org/x/tools/go/packages) and classifies each model declaration
// into one of two field-structure variants:
//   - VariantNamed: every field has an identifier (Name string)
//   - VariantPositional: every field is embedded and addressed by position
//     (struct{ string; int64 })
//
// Anything else is rejected with a diagnostic at the declaration position.
// Classification is pure: a declaration either yields a Model or a
// *diagnostic.Diagnostic, never a partially filled Model.
package analyze

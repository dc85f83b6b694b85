package gen

import (
	"fmt"
	"strconv"
	"strings"

	"ordantic/internal/analyze"
)

// FieldAddressing is the part of emission that depends on how fields are
// addressed. byName and byPosition are the two strategies.
type FieldAddressing interface {
	// ParamBase proposes the constructor parameter name of f.
	ParamBase(f *analyze.Field) string
	// Literal builds the composite literal that initializes typeName from params.
	Literal(typeName string, fields []analyze.Field, params []string) string
	// Container declares the dynamic-mapping value holding n entries.
	Container(n int) (name, init string)
	// Slot addresses the entry of f inside container.
	Slot(container string, f *analyze.Field, pos int) string
	// Converted reports whether f appears in the dynamic mapping.
	Converted(f *analyze.Field) bool
	// Exposes reports whether fields are exposed individually over the bridge.
	Exposes() bool
	// Describe returns the schema generator call for the model.
	Describe(rt, typeName string, fields []analyze.Field) string
}

func addressingFor(v analyze.Variant) (FieldAddressing, error) {
	switch v {
	case analyze.VariantNamed:
		return byName{}, nil
	case analyze.VariantPositional:
		return byPosition{}, nil
	default:
		return nil, fmt.Errorf("no field addressing for variant %s", v)
	}
}

type byName struct{}

func (byName) ParamBase(f *analyze.Field) string { return lowerCamel(f.Name) }

func (byName) Literal(typeName string, fields []analyze.Field, params []string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + ": " + params[i]
	}

	return typeName + "{" + strings.Join(parts, ", ") + "}"
}

func (byName) Container(n int) (string, string) {
	return "dict", "make(map[string]any, " + strconv.Itoa(n) + ")"
}

func (byName) Slot(container string, f *analyze.Field, _ int) string {
	return container + "[" + quote(f.JSONName()) + "]"
}

func (byName) Converted(f *analyze.Field) bool { return !f.Skipped() }

func (byName) Exposes() bool { return true }

func (byName) Describe(rt, typeName string, _ []analyze.Field) string {
	return fmt.Sprintf("%s.Describe(%s, %s{})", rt, quote(typeName), typeName)
}

type byPosition struct{}

func (byPosition) ParamBase(f *analyze.Field) string { return "val" + strconv.Itoa(f.Index) }

func (byPosition) Literal(typeName string, _ []analyze.Field, params []string) string {
	return typeName + "{" + strings.Join(params, ", ") + "}"
}

func (byPosition) Container(n int) (string, string) {
	return "tuple", "make([]any, " + strconv.Itoa(n) + ")"
}

func (byPosition) Slot(container string, _ *analyze.Field, pos int) string {
	return container + "[" + strconv.Itoa(pos) + "]"
}

func (byPosition) Converted(*analyze.Field) bool { return true }

func (byPosition) Exposes() bool { return false }

func (byPosition) Describe(rt, typeName string, fields []analyze.Field) string {
	args := make([]string, 0, len(fields)+1)
	args = append(args, quote(typeName))

	for _, f := range fields {
		args = append(args, "*new("+f.Type+")")
	}

	return fmt.Sprintf("%s.DescribeTuple(%s)", rt, strings.Join(args, ", "))
}

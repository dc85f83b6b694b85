package gen

import (
	"text/template"

	"ordantic/internal/common"
)

// importSpec is one import line of a generated file.
type importSpec struct {
	Alias string
	Path  string
}

// qualifier returns the identifier the import is referenced by.
func (i importSpec) qualifier() string {
	if i.Alias != "" {
		return i.Alias
	}

	return common.PkgAlias(i.Path)
}

// fileData holds all data needed for the file template.
type fileData struct {
	PackageName string
	Filename    string
	Imports     []importSpec
	Models      []*modelData
}

// modelData holds the emission layout of one model.
type modelData struct {
	Name    string
	PkgPath string
	RT      string // runtime package qualifier
	BR      string // bridge package qualifier
	Named   bool

	Fields        []fieldData
	Entries       int
	Literal       string
	Container     string
	ContainerInit string
	Describe      string
	Register      bool

	NewFunc    string
	ParseFunc  string
	SchemaFunc string
	SchemaJSON string
	Validators string
}

// fieldData is one field as seen by the templates.
type fieldData struct {
	Name    string // selector
	Type    string
	Param   string // constructor parameter
	Key     string // quoted bridge name
	Slot    string // dynamic-mapping entry, empty when skipped
	Exposed bool
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by ordantic. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{range .Models}}{{template "model" .}}{{end}}`))

var _ = template.Must(fileTemplate.New("model").Parse(`
// {{.NewFunc}} returns a new {{.Name}} built from its fields in declaration order.
func {{.NewFunc}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Param}} {{$f.Type}}{{end}}) *{{.Name}} {
	return &{{.Literal}}
}

// Equal reports whether m and other hold structurally equal fields.
func (m *{{.Name}}) Equal(other *{{.Name}}) bool {
	if m == nil || other == nil {
		return m == other
	}

	return {{range $i, $f := .Fields}}{{if $i}} &&
		{{end}}{{$.RT}}.StructuralEqual(m.{{$f.Name}}, other.{{$f.Name}}){{end}}
}

// Compare implements rich comparison. Only equality operators are supported.
func (m *{{.Name}}) Compare(op {{.RT}}.CompareOp, other *{{.Name}}) (bool, error) {
	return {{.RT}}.Compare(op, m.Equal(other))
}

// ModelDict converts m to a {{if .Named}}map keyed by field name{{else}}slice in field order{{end}}, converting fields recursively.
func (m *{{.Name}}) ModelDict() (any, error) {
{{- if .Entries}}
	var err error
{{end}}
	{{.Container}} := {{.ContainerInit}}
{{range .Fields}}{{if .Slot}}	if {{.Slot}}, err = {{$.RT}}.ToModelDict(m.{{.Name}}); err != nil {
		return nil, err
	}
{{end}}{{end}}
	return {{.Container}}, nil
}

// Dict returns m.ModelDict().
func (m *{{.Name}}) Dict() (any, error) {
	return m.ModelDict()
}

// JSON serializes m.
func (m *{{.Name}}) JSON() (string, error) {
	return {{.RT}}.Encode(m)
}
{{if not .Named}}
// MarshalJSON encodes {{.Name}} as a JSON array.
func (m {{.Name}}) MarshalJSON() ([]byte, error) {
	return {{.RT}}.MarshalTuple({{range $i, $f := .Fields}}{{if $i}}, {{end}}m.{{$f.Name}}{{end}})
}

// UnmarshalJSON decodes {{.Name}} from a JSON array.
func (m *{{.Name}}) UnmarshalJSON(data []byte) error {
	return {{.RT}}.UnmarshalTuple(data{{range .Fields}}, &m.{{.Name}}{{end}})
}
{{end}}
// {{.ParseFunc}} deserializes {{.Name}} from JSON text.
func {{.ParseFunc}}(text string) (*{{.Name}}, error) {
	m := new({{.Name}})
	if err := {{.RT}}.Decode(text, m); err != nil {
		return nil, err
	}

	return m, nil
}

// {{.SchemaFunc}} returns the top-level schema mapping of {{.Name}}.
func {{.SchemaFunc}}() (map[string]any, error) {
	doc, err := {{.Describe}}
	if err != nil {
		return nil, err
	}

	return doc.Summary(), nil
}

// {{.SchemaJSON}} returns the schema of {{.Name}} as JSON text.
func {{.SchemaJSON}}() (string, error) {
	doc, err := {{.Describe}}
	if err != nil {
		return "", err
	}

	return doc.Text()
}

// {{.Validators}} returns the validators of {{.Name}}. It is always empty.
func {{.Validators}}() *{{.RT}}.ValidatorSequence {
	return {{.RT}}.NewValidatorSequence(nil)
}
{{if .Register}}
func init() {
	{{.BR}}.MustRegister(&{{.BR}}.Class{
		Name:    "{{.Name}}",
		Package: "{{.PkgPath}}",
		New: func(args ...any) (any, error) {
			var (
{{range .Fields}}				{{.Param}} {{.Type}}
{{end}}			)
			if err := {{.BR}}.Bind(args{{range .Fields}}, &{{.Param}}{{end}}); err != nil {
				return nil, err
			}

			return {{.NewFunc}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Param}}{{end}}), nil
		},
{{if .Named}}		Fields: []{{.BR}}.Field{
{{range .Fields}}{{if .Exposed}}			{{$.BR}}.Accessor({{.Key}}, func(m *{{$.Name}}) *{{.Type}} { return &m.{{.Name}} }),
{{end}}{{end}}		},
{{end}}		Methods: map[string]{{.BR}}.Method{
			"__richcmp__": {{.BR}}.Method2(func(m, other *{{.Name}}, op {{.RT}}.CompareOp) (bool, error) {
				return m.Compare(op, other)
			}),
			"dict": {{.BR}}.Method0((*{{.Name}}).Dict),
			"json": {{.BR}}.Method0((*{{.Name}}).JSON),
		},
		ClassMethods: map[string]{{.BR}}.ClassMethod{
			"parse_raw":   {{.BR}}.ClassMethod1({{.ParseFunc}}),
			"schema":      {{.BR}}.ClassMethod0({{.SchemaFunc}}),
			"schema_json": {{.BR}}.ClassMethod0({{.SchemaJSON}}),
			"__get_validators__": {{.BR}}.ClassMethod0(func() (*{{.RT}}.ValidatorSequence, error) {
				return {{.Validators}}(), nil
			}),
		},
	})
}
{{end}}`))

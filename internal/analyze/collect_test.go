package analyze

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordantic/internal/diagnostic"
)

const collectSrc = `package models

import (
	"time"

	dec "github.com/shopspring/decimal"
	"net/url"
)

// Event is selected by its directive.
//
//ordantic:model
type Event struct {
	At    time.Time ` + "`json:\"at\"`" + `
	Price dec.Decimal
}

// Plain has no directive.
type Plain struct {
	Name string
}

//ordantic:model
type Empty struct{}

type (
	//ordantic:model
	Span struct {
		int64
		string
	}

	Other struct {
		Link url.URL
	}
)
`

func parseCollectSrc(t *testing.T) (*token.FileSet, []*Model, diagnostic.Diagnostics) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "models.go", collectSrc, parser.ParseComments)
	require.NoError(t, err)

	models, diags := CollectFile(fset, file, Selector{})

	return fset, models, diags
}

func TestCollectFile_Directive(t *testing.T) {
	_, models, diags := parseCollectSrc(t)

	require.Len(t, models, 2)
	assert.Equal(t, "Event", models[0].Name)
	assert.Equal(t, "models", models[0].PkgName)
	assert.Equal(t, "Span", models[1].Name)
	assert.Equal(t, VariantPositional, models[1].Variant)

	// Empty is rejected without affecting the others.
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "Empty", diags.Errors[0].TypeName)
	assert.Equal(t, diagnostic.CodeUnsupportedShape, diags.Errors[0].Code)
}

func TestCollectFile_Imports(t *testing.T) {
	_, models, _ := parseCollectSrc(t)

	assert.Equal(t, []Import{
		{Path: "time"},
		{Name: "dec", Path: "github.com/shopspring/decimal"},
	}, models[0].Imports)
	assert.Empty(t, models[1].Imports)
}

func TestCollectFile_SelectedByName(t *testing.T) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "models.go", collectSrc, parser.ParseComments)
	require.NoError(t, err)

	models, diags := CollectFile(fset, file, Selector{Names: []string{"Plain", "Other"}})
	require.Len(t, models, 4)

	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}

	assert.Equal(t, []string{"Event", "Plain", "Span", "Other"}, names)
	assert.Equal(t, []Import{{Path: "net/url"}}, models[3].Imports)
	assert.True(t, diags.HasErrors())
}

func TestSelector_GroupedDirective(t *testing.T) {
	src := `package models

//ordantic:model
type (
	A struct{ X int }
	B struct{ Y int }
)

//ordantic:model extra
type C struct{ Z int }
`

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "models.go", src, parser.ParseComments)
	require.NoError(t, err)

	// A directive on a grouped declaration does not select its members.
	models, diags := CollectFile(fset, file, Selector{})
	assert.False(t, diags.HasErrors())
	require.Len(t, models, 1)
	assert.Equal(t, "C", models[0].Name)
}

func TestDeclaredTypes(t *testing.T) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "models.go", collectSrc, parser.ParseComments)
	require.NoError(t, err)

	assert.Equal(t, []string{"Event", "Plain", "Empty", "Span", "Other"}, DeclaredTypes(file))
}

func TestCollectFile_SkippedFieldWarning(t *testing.T) {
	src := `package models

//ordantic:model
type Account struct {
	Name     string
	Password string ` + "`json:\"-\"`" + `
}
`

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "models.go", src, parser.ParseComments)
	require.NoError(t, err)

	models, diags := CollectFile(fset, file, Selector{})
	require.Len(t, models, 1)
	assert.False(t, diags.HasErrors())

	require.Len(t, diags.Warnings, 1)
	w := diags.Warnings[0]
	assert.Equal(t, diagnostic.CodeSkippedField, w.Code)
	assert.Equal(t, "Account", w.TypeName)
	assert.Contains(t, w.Message, "Password")
	assert.Equal(t, 4, w.Pos.Line)
}

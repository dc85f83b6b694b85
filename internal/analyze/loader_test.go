package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordantic/internal/diagnostic"
)

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(WithSkipSuffix("_ordantic.go"))

	pkgs, diags, err := loader.Load("ordantic/examples/models")
	require.NoError(t, err)
	assert.False(t, diags.HasErrors())
	require.Len(t, pkgs, 1)

	pkg := pkgs[0]
	assert.Equal(t, "ordantic/examples/models", pkg.Path)
	assert.Equal(t, "models", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)

	byName := make(map[string]*Model)
	for _, m := range pkg.Models {
		byName[m.Name] = m
		assert.Equal(t, pkg.Path, m.PkgPath)
	}

	require.Contains(t, byName, "ExampleModel")
	require.Contains(t, byName, "ExampleModel2")
	require.Contains(t, byName, "Pair")

	assert.Equal(t, VariantNamed, byName["ExampleModel"].Variant)
	assert.Len(t, byName["ExampleModel"].Fields, 2)
	assert.Equal(t, "ExampleModel", byName["ExampleModel2"].Fields[0].Type)
	assert.Equal(t, VariantPositional, byName["Pair"].Variant)
}

func TestLoader_UnknownModel(t *testing.T) {
	loader := NewLoader(WithSkipSuffix("_ordantic.go"), WithModels("Missing"))

	_, diags, err := loader.Load("ordantic/examples/models")
	require.NoError(t, err)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnknownModel, diags.Warnings[0].Code)
	assert.Equal(t, "Missing", diags.Warnings[0].TypeName)
	assert.NotContains(t, diags.Warnings[0].Message, "did you mean")
}

func TestLoader_UnknownModelSuggestion(t *testing.T) {
	loader := NewLoader(WithSkipSuffix("_ordantic.go"), WithModels("ExampelModel"))

	_, diags, err := loader.Load("ordantic/examples/models")
	require.NoError(t, err)
	require.Len(t, diags.Warnings, 1)
	assert.Contains(t, diags.Warnings[0].Message, "did you mean ExampleModel?")
}

func TestLoader_MissingPackage(t *testing.T) {
	_, diags, err := NewLoader().Load("ordantic/does/not/exist")
	require.Error(t, err)
	require.NotEmpty(t, diags.Errors)
	assert.Equal(t, diagnostic.CodePackageLoad, diags.Errors[0].Code)
}

func TestErrorPosition(t *testing.T) {
	pos := errorPosition("/src/models.go:12:6")
	assert.Equal(t, "/src/models.go", pos.Filename)
	assert.Equal(t, 12, pos.Line)
	assert.Equal(t, 6, pos.Column)

	pos = errorPosition("-")
	assert.False(t, pos.IsValid())
}

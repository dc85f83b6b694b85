package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordantic/internal/analyze"
)

const modelsSrc = `package models

import "time"

//ordantic:model
type ExampleModel struct {
	Name   string ` + "`json:\"name\"`" + `
	Number int64  ` + "`json:\"number\"`" + `
}

//ordantic:model
type Event struct {
	Type   string
	At     time.Time ` + "`json:\"at\"`" + `
	Secret string    ` + "`json:\"-\"`" + `
	_      int
}

//ordantic:model
type Pair struct {
	string
	int64
}
`

// loadSource classifies the models declared in src as package example/models.
func loadSource(t *testing.T, src string) *analyze.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "models.go", src, parser.ParseComments)
	require.NoError(t, err)

	models, diags := analyze.CollectFile(fset, file, analyze.Selector{})
	require.False(t, diags.HasErrors(), diags.Err())

	for _, m := range models {
		m.PkgPath = "example/models"
	}

	return &analyze.Package{
		Path:   "example/models",
		Name:   file.Name.Name,
		Dir:    t.TempDir(),
		Models: models,
	}
}

func generate(t *testing.T, config GeneratorConfig) (*GeneratedFile, string) {
	t.Helper()

	file, err := NewGenerator(config).GeneratePackage(loadSource(t, modelsSrc))
	require.NoError(t, err)

	// The output must be valid Go.
	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.ParseComments)
	require.NoError(t, err, string(file.Content))

	return file, string(file.Content)
}

func TestGenerator_GeneratePackage(t *testing.T) {
	file, content := generate(t, DefaultGeneratorConfig())

	assert.Equal(t, "models_ordantic.go", file.Filename)
	assert.Contains(t, content, "// Code generated by ordantic. DO NOT EDIT.")
	assert.Contains(t, content, "package models")

	// Imports are deduplicated and sorted.
	assert.Contains(t, content, "import (\n\t\"ordantic\"\n\t\"ordantic/bridge\"\n\t\"time\"\n)")
}

func TestGenerator_NamedModel(t *testing.T) {
	_, content := generate(t, DefaultGeneratorConfig())

	assert.Contains(t, content, "func NewExampleModel(name string, number int64) *ExampleModel {")
	assert.Contains(t, content, "return &ExampleModel{Name: name, Number: number}")
	assert.Contains(t, content, "func (m *ExampleModel) Equal(other *ExampleModel) bool {")
	assert.Contains(t, content, "func (m *ExampleModel) Compare(op ordantic.CompareOp, other *ExampleModel) (bool, error) {")
	assert.Contains(t, content, `dict["name"], err = ordantic.ToModelDict(m.Name)`)
	assert.Contains(t, content, `dict["number"], err = ordantic.ToModelDict(m.Number)`)
	assert.Contains(t, content, "func ParseExampleModelRaw(text string) (*ExampleModel, error) {")
	assert.Contains(t, content, `ordantic.Describe("ExampleModel", ExampleModel{})`)
	assert.Contains(t, content, "func ExampleModelSchemaJSON() (string, error) {")
	assert.Contains(t, content, "func ExampleModelValidators() *ordantic.ValidatorSequence {")
	assert.NotContains(t, content, "func (m ExampleModel) MarshalJSON")
}

func TestGenerator_FieldNaming(t *testing.T) {
	_, content := generate(t, DefaultGeneratorConfig())

	// Keywords are not usable as parameters and blank fields are dropped.
	assert.Contains(t, content, "func NewEvent(type_ string, at time.Time, secret string) *Event {")
	assert.Contains(t, content, "return &Event{Type: type_, At: at, Secret: secret}")

	// Fields excluded from JSON are left out of the dynamic mapping.
	assert.Contains(t, content, "dict := make(map[string]any, 2)")
	assert.Contains(t, content, `dict["Type"], err`)
	assert.Contains(t, content, `dict["at"], err`)
	assert.NotContains(t, content, `dict["Secret"]`)
	assert.NotContains(t, content, `dict["-"]`)
}

func TestGenerator_PositionalModel(t *testing.T) {
	_, content := generate(t, DefaultGeneratorConfig())

	assert.Contains(t, content, "func NewPair(val0 string, val1 int64) *Pair {")
	assert.Contains(t, content, "return &Pair{val0, val1}")
	assert.Contains(t, content, "tuple := make([]any, 2)")
	assert.Contains(t, content, "tuple[1], err = ordantic.ToModelDict(m.int64)")
	assert.Contains(t, content, "func (m Pair) MarshalJSON() ([]byte, error) {")
	assert.Contains(t, content, "return ordantic.UnmarshalTuple(data, &m.string, &m.int64)")
	assert.Contains(t, content, `ordantic.DescribeTuple("Pair", *new(string), *new(int64))`)
	assert.NotContains(t, content, "func(m *Pair) *string")
}

func TestGenerator_Registration(t *testing.T) {
	_, content := generate(t, DefaultGeneratorConfig())

	assert.Contains(t, content, "bridge.MustRegister(&bridge.Class{")
	assert.Contains(t, content, `Package: "example/models",`)
	assert.Contains(t, content, `bridge.Accessor("name", func(m *ExampleModel) *string { return &m.Name })`)
	assert.Contains(t, content, `"__richcmp__": bridge.Method2(`)
	assert.Contains(t, content, `bridge.ClassMethod1(ParsePairRaw)`)
	assert.Contains(t, content, `"__get_validators__": bridge.ClassMethod0(`)

	config := DefaultGeneratorConfig()
	config.Register = false

	_, content = generate(t, config)
	assert.NotContains(t, content, "bridge")
	assert.NotContains(t, content, "func init()")
}

func TestGenerator_ImportCollision(t *testing.T) {
	src := `package models

//ordantic:model
type Clash struct {
	Ordantic string
	Bridge   int
	Err      error
}
`

	file, err := NewGenerator(DefaultGeneratorConfig()).GeneratePackage(loadSource(t, src))
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "func NewClash(ordantic2 string, bridge2 int, err2 error) *Clash {")
}

func TestGenerator_TypeIdentCollision(t *testing.T) {
	src := `package models

type kind int

//ordantic:model
type Shape struct {
	Kind  kind
	Other kind
	Sizes map[kind][]kind
}
`

	file, err := NewGenerator(DefaultGeneratorConfig()).GeneratePackage(loadSource(t, src))
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "func NewShape(kind2 kind, other kind, sizes map[kind][]kind) *Shape {")
	assert.Contains(t, content, "kind2 kind\n")
	assert.NotContains(t, content, "\tkind  kind\n")
}

func TestGenerator_UnexportedFieldsRejected(t *testing.T) {
	src := `package models

//ordantic:model
type point struct {
	x, y int64
}
`

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "models.go", src, parser.ParseComments)
	require.NoError(t, err)

	// No model reaches the generator, so no JSON encoding that drops fields is emitted.
	models, diags := analyze.CollectFile(fset, file, analyze.Selector{})
	assert.Empty(t, models)
	require.Len(t, diags.Errors, 1)
	assert.Contains(t, diags.Errors[0].Message, "must be exported")

	_, err = NewGenerator(DefaultGeneratorConfig()).GeneratePackage(&analyze.Package{Name: "models", Models: models})
	require.Error(t, err)
}

func TestGenerator_Errors(t *testing.T) {
	gen := NewGenerator(DefaultGeneratorConfig())

	_, err := gen.GeneratePackage(&analyze.Package{Name: "empty"})
	require.Error(t, err)

	blank := loadSource(t, `package models

//ordantic:model
type Blank struct {
	_ int
}
`)

	_, err = gen.GeneratePackage(blank)
	require.ErrorContains(t, err, "no addressable fields")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteFiles([]GeneratedFile{{Dir: dir, Filename: "a_ordantic.go", Content: []byte("package a\n")}})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a_ordantic.go")}, paths)

	content, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(content))
}

func TestKeepUnformatted(t *testing.T) {
	dir := t.TempDir()

	path, err := keepUnformatted(dir, "models_ordantic.go", []byte("package models\nfunc {"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "models_ordantic.go.unformatted"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package models\nfunc {", string(content))

	path, err = keepUnformatted("", "models_ordantic.go", nil)
	require.NoError(t, err)
	assert.Empty(t, path)
}

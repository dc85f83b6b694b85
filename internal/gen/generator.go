package gen

import (
	"bytes"
	"cmp"
	"fmt"
	"go/ast"
	"go/format"
	"log/slog"
	"slices"

	"ordantic/internal/analyze"
	"ordantic/internal/common"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is appended to the package name to form the output file name.
	Suffix string
	// OutputDir overrides the package directory when set.
	OutputDir string
	// RuntimeImport is the import path of the runtime support package.
	RuntimeImport string
	// BridgeImport is the import path of the embedding bridge.
	BridgeImport string
	// Register emits bridge registration for every model.
	Register bool
	// Logger receives per-model debug output.
	Logger *slog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:        "_ordantic.go",
		RuntimeImport: "ordantic",
		BridgeImport:  "ordantic/bridge",
		Register:      true,
	}
}

// Generator emits augmented model code.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "models_ordantic.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits one file per package.
func (g *Generator) Generate(pkgs []*analyze.Package) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(pkgs))

	for _, pkg := range pkgs {
		file, err := g.GeneratePackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", pkg.Path, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GeneratePackage emits the augmented code for every model of pkg into a
// single file.
func (g *Generator) GeneratePackage(pkg *analyze.Package) (*GeneratedFile, error) {
	if len(pkg.Models) == 0 {
		return nil, fmt.Errorf("package %s has no models", pkg.Name)
	}

	data := &fileData{
		PackageName: pkg.Name,
		Filename:    pkg.Name + g.config.Suffix,
	}

	dir := pkg.Dir
	if g.config.OutputDir != "" {
		dir = g.config.OutputDir
	}

	rt := importSpec{Path: g.config.RuntimeImport}
	br := importSpec{Path: g.config.BridgeImport}

	imports := []importSpec{rt}
	if g.config.Register {
		imports = append(imports, br)
	}

	models := slices.Clone(pkg.Models)
	slices.SortStableFunc(models, func(a, b *analyze.Model) int {
		return cmp.Or(cmp.Compare(a.Pos.Filename, b.Pos.Filename), cmp.Compare(a.Pos.Offset, b.Pos.Offset))
	})

	for _, m := range models {
		md, err := g.buildModelData(m, rt.qualifier(), br.qualifier())
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", m.Name, err)
		}

		data.Models = append(data.Models, md)

		for _, imp := range m.Imports {
			imports = append(imports, importSpec{Alias: imp.Name, Path: imp.Path})
		}

		g.logger.Debug("emitting model", "package", pkg.Path, "type", m.Name, "variant", m.Variant)
	}

	data.Imports = common.Dedupe(imports)
	slices.SortFunc(data.Imports, func(a, b importSpec) int { return cmp.Compare(a.Path, b.Path) })

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if path, werr := keepUnformatted(dir, data.Filename, buf.Bytes()); werr == nil && path != "" {
			g.logger.Debug("kept unformatted output", "file", path)
		}

		return &GeneratedFile{
			Dir:      dir,
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Dir:      dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// buildModelData lays out one model for the template.
func (g *Generator) buildModelData(m *analyze.Model, rt, br string) (*modelData, error) {
	addr, err := addressingFor(m.Variant)
	if err != nil {
		return nil, err
	}

	fields := make([]analyze.Field, 0, len(m.Fields))
	for _, f := range m.Fields {
		if f.Name == "_" {
			continue
		}

		fields = append(fields, f)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("no addressable fields")
	}

	newFunc := funcName("New", m.Name, "")

	// Parameters live in the constructor and in the bridge constructor
	// closure, which also declares args and err and refers to the model, its
	// constructor, every imported package and every name the field types use.
	reserved := []string{"args", "err", rt, br, m.Name, newFunc}
	for _, imp := range m.Imports {
		reserved = append(reserved, importSpec{Alias: imp.Name, Path: imp.Path}.qualifier())
	}

	for _, f := range fields {
		reserved = append(reserved, typeIdents(f.Expr)...)
	}

	params := newScope(reserved...)
	names := make([]string, len(fields))
	for i := range fields {
		names[i] = params.name(addr.ParamBase(&fields[i]))
	}

	container, containerInit := addr.Container(len(fields))

	md := &modelData{
		Name:          m.Name,
		PkgPath:       m.PkgPath,
		RT:            rt,
		BR:            br,
		Named:         m.NamedFields(),
		Literal:       addr.Literal(m.Name, fields, names),
		Container:     container,
		ContainerInit: containerInit,
		Describe:      addr.Describe(rt, m.Name, fields),
		Register:      g.config.Register,
		NewFunc:       newFunc,
		ParseFunc:     funcName("Parse", m.Name, "Raw"),
		SchemaFunc:    funcName("", m.Name, "Schema"),
		SchemaJSON:    funcName("", m.Name, "SchemaJSON"),
		Validators:    funcName("", m.Name, "Validators"),
	}

	pos := 0
	for i := range fields {
		f := &fields[i]

		fd := fieldData{
			Name:    f.Name,
			Type:    f.Type,
			Param:   names[i],
			Key:     quote(f.JSONName()),
			Exposed: addr.Exposes(),
		}

		if addr.Converted(f) {
			fd.Slot = addr.Slot(container, f, pos)
			pos++
		}

		md.Fields = append(md.Fields, fd)
	}

	md.Entries = pos
	if pos != len(fields) {
		_, md.ContainerInit = addr.Container(pos)
	}

	return md, nil
}

// typeIdents returns the identifiers a field type expression refers to.
func typeIdents(expr ast.Expr) []string {
	if expr == nil {
		return nil
	}

	var names []string
	ast.Inspect(expr, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			names = append(names, id.Name)
		}

		return true
	})

	return names
}

package analyze

import (
	"fmt"
	"go/token"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"ordantic/internal/diagnostic"
	"ordantic/internal/match"
)

// LoadMode specifies what information to load from packages. Type
// information is not needed: a package whose generated file is stale may not
// type-check, but its declarations can still be classified.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// Loader loads Go packages and classifies their model declarations.
type Loader struct {
	selector Selector
	// skipSuffix excludes previously generated files from analysis.
	skipSuffix string
	dir        string
	logger     *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithModels selects types by name in addition to the directive.
func WithModels(names ...string) LoaderOption {
	return func(l *Loader) { l.selector.Names = append(l.selector.Names, names...) }
}

// WithSkipSuffix excludes files ending in suffix.
func WithSkipSuffix(suffix string) LoaderOption {
	return func(l *Loader) { l.skipSuffix = suffix }
}

// WithDir sets the directory patterns are resolved against.
func WithDir(dir string) LoaderOption {
	return func(l *Loader) { l.dir = dir }
}

// WithLogger sets the logger used for per-declaration decisions.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a new Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load loads the packages matching patterns (e.g. "./models", "ordantic/examples/...")
// and returns their models. Unsupported declarations are reported as
// diagnostics; the error is reserved for failures to load or parse.
func (l *Loader) Load(patterns ...string) ([]*Package, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, diags, fmt.Errorf("failed to load packages: %w", err)
	}

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				continue
			}

			diags.AddError(diagnostic.CodePackageLoad, e.Msg, "", errorPosition(e.Pos))
		}
	}

	if diags.HasErrors() {
		return nil, diags, fmt.Errorf("%d package errors", len(diags.Errors))
	}

	seen := make(map[string]bool)
	var declared []string
	out := make([]*Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		p, pkgDiags := l.processPackage(pkg)
		diags.Merge(pkgDiags)

		for _, file := range pkg.Syntax {
			declared = append(declared, DeclaredTypes(file)...)
		}

		for _, m := range p.Models {
			seen[m.Name] = true
		}

		for _, d := range pkgDiags.Errors {
			seen[d.TypeName] = true
		}

		if len(p.Models) > 0 {
			out = append(out, p)
		}
	}

	for _, name := range l.selector.Names {
		if seen[name] {
			continue
		}

		msg := fmt.Sprintf("model %s not found in %s", name, strings.Join(patterns, " "))
		if hint, ok := match.Suggest(name, declared); ok {
			msg += fmt.Sprintf(" (did you mean %s?)", hint)
		}

		diags.AddWarning(diagnostic.CodeUnknownModel, msg, name, token.Position{})
	}

	return out, diags, nil
}

// errorPosition parses the "file:line:col" position of a package error.
func errorPosition(pos string) token.Position {
	var p token.Position

	parts := strings.Split(pos, ":")
	if len(parts) >= 3 {
		p.Line, _ = strconv.Atoi(parts[len(parts)-2])
		p.Column, _ = strconv.Atoi(parts[len(parts)-1])
		p.Filename = strings.Join(parts[:len(parts)-2], ":")
	} else {
		p.Filename = pos
	}

	return p
}

// processPackage classifies the selected declarations of a loaded package.
func (l *Loader) processPackage(pkg *packages.Package) (*Package, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	p := &Package{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, file := range pkg.Syntax {
		filename := pkg.Fset.Position(file.Package).Filename
		if l.skipSuffix != "" && strings.HasSuffix(filename, l.skipSuffix) {
			continue
		}

		models, fileDiags := CollectFile(pkg.Fset, file, l.selector)
		diags.Merge(fileDiags)

		for _, m := range models {
			m.PkgPath = pkg.PkgPath
			l.logger.Debug("classified model",
				"package", pkg.PkgPath, "type", m.Name, "variant", m.Variant, "fields", len(m.Fields))
		}

		p.Models = append(p.Models, models...)
	}

	for _, d := range diags.Errors {
		l.logger.Debug("rejected declaration", "package", pkg.PkgPath, "type", d.TypeName, "reason", d.Message)
	}

	return p, diags
}

// Package main provides the CLI entrypoint for ordantic.
//
// ordantic is a go:generate tool that:
//   - Loads Go packages and finds struct declarations marked //ordantic:model
//   - Classifies each as a named-field or positional model
//   - Generates constructors, comparison, dict conversion, JSON, schema
//     accessors and bridge registration next to the declarations
//
// Typical use inside a models package:
//
//	//go:generate go run ordantic/cmd/ordantic gen .
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"ordantic/internal/analyze"
	"ordantic/internal/config"
	"ordantic/internal/diagnostic"
	"ordantic/internal/gen"
)

// errDiagnostics signals that diagnostics were already printed.
var errDiagnostics = errors.New("declarations rejected")

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "gen":
		err = genCmd(os.Args[2:])
	case "check":
		err = checkCmd(os.Args[2:])
	case "analyze":
		err = analyzeCmd(os.Args[2:])
	case "init":
		err = initCmd(os.Args[2:])
	case "help", "-h", "-help", "--help":
		usage(os.Stdout)
		return
	default:
		usage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "ordantic:", err)
		}

		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `ordantic - model code generator

Usage:
  ordantic gen     [-config ordantic.yaml] [-models A,B] [-out dir] [-no-register] [-v] [packages]
  ordantic check   [-config ordantic.yaml] [-models A,B] [-v] [packages]
  ordantic analyze [-config ordantic.yaml] [-models A,B] [-dump] [packages]
  ordantic init    [-config ordantic.yaml] [-y]

Packages default to the config file's "packages", then ".".
`)
}

// commonFlags are shared by the commands that load packages.
type commonFlags struct {
	configPath string
	models     string
	verbose    bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", config.DefaultFilename, "configuration file")
	fs.StringVar(&c.models, "models", "", "comma-separated type names to process without the directive")
	fs.BoolVar(&c.verbose, "v", false, "verbose (debug) logging")
}

func (c *commonFlags) logger() *slog.Logger {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// load reads the configuration, applies flag overrides and classifies the
// selected packages.
func (c *commonFlags) load(fs *flag.FlagSet, logger *slog.Logger) (*config.Config, []*analyze.Package, diagnostic.Diagnostics, error) {
	cfg, err := config.LoadOptional(c.configPath)
	if err != nil {
		return nil, nil, diagnostic.Diagnostics{}, err
	}

	if c.models != "" {
		cfg.Models = append(cfg.Models, splitCSV(c.models)...)
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = cfg.Packages
	}

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	loader := analyze.NewLoader(
		analyze.WithModels(cfg.Models...),
		analyze.WithSkipSuffix(cfg.Output.Suffix),
		analyze.WithLogger(logger),
	)

	pkgs, diags, err := loader.Load(patterns...)
	if err != nil {
		report(diags)

		return nil, nil, diags, err
	}

	return cfg, pkgs, diags, nil
}

func genCmd(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)

	var (
		common     commonFlags
		out        string
		noRegister bool
	)

	common.register(fs)
	fs.StringVar(&out, "out", "", "output directory (default: next to each package)")
	fs.BoolVar(&noRegister, "no-register", false, "do not emit bridge registration")
	_ = fs.Parse(args)

	logger := common.logger()

	cfg, pkgs, diags, err := common.load(fs, logger)
	if err != nil {
		return err
	}

	if report(diags) {
		return errDiagnostics
	}

	genCfg := gen.GeneratorConfig{
		Suffix:        cfg.Output.Suffix,
		OutputDir:     cfg.Output.Dir,
		RuntimeImport: cfg.RuntimeImport,
		BridgeImport:  cfg.BridgeImport,
		Register:      cfg.RegisterModels() && !noRegister,
		Logger:        logger,
	}

	if out != "" {
		genCfg.OutputDir = out
	}

	files, err := gen.NewGenerator(genCfg).Generate(pkgs)
	if err != nil {
		return err
	}

	paths, err := gen.WriteFiles(files)
	if err != nil {
		return err
	}

	for _, p := range paths {
		logger.Info("generated", "file", p)
	}

	if len(paths) == 0 {
		logger.Warn("no models found")
	}

	return nil
}

func checkCmd(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)

	var common commonFlags

	common.register(fs)
	_ = fs.Parse(args)

	logger := common.logger()

	_, pkgs, diags, err := common.load(fs, logger)
	if err != nil {
		return err
	}

	if report(diags) {
		return errDiagnostics
	}

	for _, p := range pkgs {
		for _, m := range p.Models {
			fmt.Printf("%s.%s: %s, %d fields\n", p.Path, m.Name, m.Variant, len(m.Fields))
		}
	}

	return nil
}

func analyzeCmd(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)

	var (
		common commonFlags
		dump   bool
	)

	common.register(fs)
	fs.BoolVar(&dump, "dump", false, "dump the classified models")
	_ = fs.Parse(args)

	_, pkgs, diags, err := common.load(fs, common.logger())
	if err != nil {
		return err
	}

	report(diags)

	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableMethods: true}
		for _, p := range pkgs {
			for _, m := range p.Models {
				// Expr is the raw AST and only adds noise.
				for i := range m.Fields {
					m.Fields[i].Expr = nil
				}

				cfg.Fdump(os.Stdout, m)
			}
		}

		return nil
	}

	for _, p := range pkgs {
		fmt.Printf("package %s (%s)\n", p.Name, p.Path)

		for _, m := range p.Models {
			fmt.Printf("  %s %s\n", m.Name, m.Variant)

			for _, f := range m.Fields {
				fmt.Printf("    %d %s %s\n", f.Index, f.Name, f.Type)
			}
		}
	}

	return nil
}

// report prints diagnostics to stderr and returns true if any is an error.
func report(diags diagnostic.Diagnostics) bool {
	for _, d := range diags.All() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d)
	}

	return diags.HasErrors()
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"ordantic/internal/config"
)

// initAnswers are filled by the interactive questions.
type initAnswers struct {
	Packages string `survey:"packages"`
	Suffix   string `survey:"suffix"`
	Register bool   `survey:"register"`
}

func initCmd(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)

	var (
		path string
		yes  bool
	)

	fs.StringVar(&path, "config", config.DefaultFilename, "configuration file to write")
	fs.BoolVar(&yes, "y", false, "accept defaults without asking")
	_ = fs.Parse(args)

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := config.Default()
	cfg.Packages = config.StringOrArray{"./..."}

	if !yes {
		answers := initAnswers{
			Packages: strings.Join(cfg.Packages, ","),
			Suffix:   cfg.Output.Suffix,
			Register: true,
		}

		questions := []*survey.Question{
			{
				Name:   "packages",
				Prompt: &survey.Input{Message: "Packages to scan (comma-separated patterns):", Default: answers.Packages},
			},
			{
				Name:     "suffix",
				Prompt:   &survey.Input{Message: "Generated file suffix:", Default: answers.Suffix},
				Validate: validateSuffix,
			},
			{
				Name:   "register",
				Prompt: &survey.Confirm{Message: "Register models with the embedding bridge?", Default: answers.Register},
			},
		}

		if err := survey.Ask(questions, &answers); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		cfg.Packages = splitCSV(answers.Packages)
		cfg.Output.Suffix = answers.Suffix
		cfg.Register = &answers.Register
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.WriteFile(cfg, path); err != nil {
		return err
	}

	fmt.Println("wrote", path)

	return nil
}

func validateSuffix(ans any) error {
	s, ok := ans.(string)
	if !ok {
		return errors.New("expected text")
	}

	if !strings.HasSuffix(s, ".go") || strings.HasSuffix(s, "_test.go") {
		return errors.New("suffix must end in .go and must not be a test file")
	}

	return nil
}

func splitCSV(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

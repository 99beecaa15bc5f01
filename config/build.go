package config

import (
	"fmt"

	"github.com/cpcf/iconforge/format"
)

// Build configures one generator run. Empty fields keep their defaults.
type Build struct {
	// Catalog is the icon catalog document. Empty selects the built-in catalog.
	Catalog string `yaml:"catalog"`
	// Template is the component template. Empty selects the built-in template.
	Template string `yaml:"template"`
	// Output is the root of the generated tree.
	Output string `yaml:"output"`
	// Concurrency bounds per-format fan-out; zero means one worker per CPU.
	Concurrency int `yaml:"concurrency"`
	// Formats lists the module formats to emit.
	Formats []string `yaml:"formats"`
	// Banner, when set, is prepended as a comment to every generated file.
	Banner string `yaml:"banner"`
}

// Default returns the configuration used when no file is given.
func Default() Build {
	return Build{
		Output:  "dist",
		Formats: []string{format.ESM.String(), format.CJS.String()},
	}
}

// Load reads the configuration file at path on top of Default.
func Load(path string) (Build, error) {
	cfg := Default()
	if err := LoadYAML(path, &cfg); err != nil {
		return Build{}, err
	}
	return cfg, nil
}

func (b *Build) Validate() error {
	if b.Output == "" {
		return fmt.Errorf("output is required")
	}
	if b.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", b.Concurrency)
	}
	if len(b.Formats) == 0 {
		return fmt.Errorf("at least one format is required")
	}
	if _, err := format.ParseList(b.Formats); err != nil {
		return err
	}
	return nil
}

// ModuleFormats returns the configured formats. It assumes Validate passed.
func (b *Build) ModuleFormats() []format.Format {
	formats, err := format.ParseList(b.Formats)
	if err != nil {
		return nil
	}
	return formats
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testConfig struct {
	Name    string            `yaml:"name"`
	Options map[string]string `yaml:"options"`
}

type validatedConfig struct {
	Name string `yaml:"name"`
}

func (c *validatedConfig) Validate() error {
	if c.Name == "" {
		return os.ErrInvalid
	}
	return nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iconforge.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "name: feather\noptions:\n  size: \"24\"\n")

	var cfg testConfig
	if err := LoadYAML(path, &cfg); err != nil {
		t.Fatalf("LoadYAML failed: %v", err)
	}
	if cfg.Name != "feather" || cfg.Options["size"] != "24" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	var cfg testConfig
	err := LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"), &cfg)
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("expected missing file error, got %v", err)
	}
}

func TestLoadYAMLUnknownField(t *testing.T) {
	var cfg testConfig
	if err := LoadYAMLFromString("name: a\nnmae: b\n", &cfg); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestLoadYAMLValidation(t *testing.T) {
	var cfg validatedConfig
	err := LoadYAMLFromString("name: \"\"\n", &cfg)
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("expected validation error, got %v", err)
	}

	if err := LoadYAMLFromString("name: ok\n", &cfg); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadYAMLEmptyDocument(t *testing.T) {
	var cfg testConfig
	if err := LoadYAMLFromString("", &cfg); err != nil {
		t.Errorf("empty document should decode to zero value, got %v", err)
	}
}

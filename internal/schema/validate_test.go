package schema

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func decodeYAML(t *testing.T, src string) any {
	t.Helper()
	var doc any
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	return doc
}

func TestValidateConfig_Valid(t *testing.T) {
	t.Parallel()
	doc := decodeYAML(t, `
vcs: hg
extensions:
  - .kt
  - .swift
exclude:
  - third_party/
`)
	if err := ValidateConfig(doc); err != nil {
		t.Errorf("ValidateConfig() error = %v", err)
	}
}

func TestValidateConfig_EmptyDocument(t *testing.T) {
	t.Parallel()
	if err := ValidateConfig(map[string]any{}); err != nil {
		t.Errorf("ValidateConfig(empty) error = %v", err)
	}
}

func TestValidateConfig_UnknownKey(t *testing.T) {
	t.Parallel()
	doc := decodeYAML(t, "tab_width: 8\n")
	err := ValidateConfig(doc)
	if err == nil {
		t.Fatal("expected validation error for unknown key")
	}
	if !strings.Contains(err.Error(), "config validation failed") {
		t.Errorf("error = %v", err)
	}
}

func TestValidateConfig_BadVCS(t *testing.T) {
	t.Parallel()
	doc := decodeYAML(t, "vcs: svn\n")
	if err := ValidateConfig(doc); err == nil {
		t.Error("expected validation error for vcs: svn")
	}
}

func TestValidateConfig_ExtensionWithoutDot(t *testing.T) {
	t.Parallel()
	doc := decodeYAML(t, "extensions:\n  - kt\n")
	if err := ValidateConfig(doc); err == nil {
		t.Error("expected validation error for extension without leading dot")
	}
}

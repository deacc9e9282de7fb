package assets

// Notes:
// - LoadTemplate: tests embedded fallback, base path override, name validation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTemplateEmbedded(t *testing.T) {
	t.Parallel()

	got, err := NewLoader("").LoadTemplate("preview")
	if err != nil {
		t.Fatalf("LoadTemplate unexpected error: %v", err)
	}

	for _, want := range []string{"<!DOCTYPE html>", `<link rel="stylesheet"`, "{{.FontName}}", "{{.Tags}}"} {
		if !strings.Contains(got, want) {
			t.Errorf("embedded preview template missing %q", want)
		}
	}
}

func TestLoadTemplateOverride(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := filepath.Join(base, "templates")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating override dir: %v", err)
	}
	custom := "<html>{{.Tags}}</html>"
	if err := os.WriteFile(filepath.Join(dir, "preview.html"), []byte(custom), 0o644); err != nil {
		t.Fatalf("writing override: %v", err)
	}

	got, err := NewLoader(base).LoadTemplate("preview")
	if err != nil {
		t.Fatalf("LoadTemplate unexpected error: %v", err)
	}
	if got != custom {
		t.Errorf("override not used, got %q", got)
	}

	// A name with no override still falls back to embedded.
	if _, err := NewLoader(base).LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("missing template error = %v, want %v", err, ErrTemplateNotFound)
	}
}

func TestLoadTemplateValidation(t *testing.T) {
	t.Parallel()

	tests := []string{"", "../escape", "sub/dir", `win\path`}
	for _, name := range tests {
		if _, err := NewLoader("").LoadTemplate(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate(%q) error = %v, want %v", name, err, ErrInvalidAssetName)
		}
	}
}

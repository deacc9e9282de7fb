// Package assets provides the HTML templates used for the icon preview page.
// Templates are embedded by default; a base path can override them.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed templates/*
var templates embed.FS

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// Loader resolves HTML templates by name. If basePath is set, templates under
// <basePath>/templates/ take precedence, with fallback to the embedded ones.
type Loader struct {
	basePath string
}

// NewLoader creates a Loader. An empty basePath means embedded assets only.
func NewLoader(basePath string) *Loader {
	return &Loader{basePath: basePath}
}

// LoadTemplate loads an HTML template by name (without the .html extension).
func (l *Loader) LoadTemplate(name string) (string, error) {
	if err := validateAssetName(name); err != nil {
		return "", err
	}

	if l.basePath != "" {
		path := filepath.Join(l.basePath, "templates", name+".html")
		data, err := os.ReadFile(path) // #nosec G304 -- base path is caller-provided configuration
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("reading template %q: %w", name, err)
		}
	}

	data, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(data), nil
}

// validateAssetName rejects names that could escape the templates directory.
func validateAssetName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// Package config loads CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	iconfont "github.com/alnah/go-iconfont"
	"github.com/alnah/go-iconfont/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// maxConfigSize limits config input to prevent memory exhaustion (1MB).
const maxConfigSize = 1 << 20

// Config holds all configuration for a generation run.
type Config struct {
	Font      FontConfig      `yaml:"font"`
	Dist      DistConfig      `yaml:"dist"`
	Generator GeneratorConfig `yaml:"generator"`
	IDs       IDConfig        `yaml:"ids"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
}

// FontConfig defines the generator invocation parameters.
type FontConfig struct {
	Name   string `yaml:"name"`   // font family name
	Input  string `yaml:"input"`  // SVG glob pattern
	Output string `yaml:"output"` // directory for the generated font files
}

// DistConfig defines where the CSS and HTML outputs land.
type DistConfig struct {
	Dir string `yaml:"dir"` // empty = dist/ next to the executable
}

// GeneratorConfig defines the external tool and its options.
type GeneratorConfig struct {
	Tool      string `yaml:"tool"`      // generator binary (empty = default)
	Height    int    `yaml:"height"`    // glyph height in font units (0 = tool default)
	Descent   int    `yaml:"descent"`   // descent in font units
	Normalize bool   `yaml:"normalize"` // let the tool normalize icon sizes
	Verify    bool   `yaml:"verify"`    // parse the emitted TTF after generation
}

// IDConfig defines icon identifier handling.
type IDConfig struct {
	Kebab bool `yaml:"kebab"` // normalize identifiers to kebab-case
}

// SnapshotConfig defines the preview snapshot options.
type SnapshotConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration matching the original script's literals.
func Default() *Config {
	return &Config{
		Font: FontConfig{
			Name:   iconfont.DefaultFontName,
			Input:  iconfont.DefaultSVGPattern,
			Output: iconfont.DefaultOutputDir,
		},
		Generator: GeneratorConfig{
			Tool:   iconfont.DefaultTool,
			Verify: true,
		},
	}
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolvePath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrConfigParse, maxConfigSize)
	}

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// resolvePath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-iconfont/
func resolvePath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-iconfont", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

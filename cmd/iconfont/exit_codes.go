package main

import (
	"errors"
	"os"

	iconfont "github.com/alnah/go-iconfont"
	"github.com/alnah/go-iconfont/internal/config"
)

// Exit codes for the iconfont CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful run
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or validation
	ExitIO        = 3 // File not found, permission denied, write failure
	ExitGenerator = 4 // Generator tool or browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Generator tool and browser errors (exit 4)
	if errors.Is(err, iconfont.ErrGeneration) ||
		errors.Is(err, iconfont.ErrManifestParse) ||
		errors.Is(err, iconfont.ErrFontInvalid) ||
		errors.Is(err, iconfont.ErrBrowserConnect) ||
		errors.Is(err, iconfont.ErrPageCreate) ||
		errors.Is(err, iconfont.ErrPageLoad) ||
		errors.Is(err, iconfont.ErrSnapshotRender) {
		return ExitGenerator
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, iconfont.ErrWriteFailed) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, iconfont.ErrEmptyFontName) ||
		errors.Is(err, iconfont.ErrEmptyPattern) ||
		errors.Is(err, iconfont.ErrGlyphName) {
		return ExitUsage
	}

	return ExitGeneral
}

package iconfont

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyFontName  = errors.New("font name cannot be empty")
	ErrEmptyPattern   = errors.New("svg pattern cannot be empty")
	ErrGeneration     = errors.New("font generation failed")
	ErrManifestParse  = errors.New("glyph manifest parsing failed")
	ErrGlyphName      = errors.New("glyph name has no '$' delimiter")
	ErrFontInvalid    = errors.New("generated font failed verification")
	ErrWriteFailed    = errors.New("output write failed")
	ErrSnapshotRender = errors.New("preview snapshot failed")

	// Browser errors for the snapshot renderer.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)

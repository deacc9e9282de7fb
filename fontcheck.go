package iconfont

import (
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
)

// verifyFontFile parses the generated TTF and checks it holds at least one
// glyph per manifest record. NumGlyphs counts .notdef and any other internal
// glyphs too, so the comparison is a lower bound, not an equality.
func verifyFontFile(path string, wantGlyphs int) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path derives from caller-provided output dir
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrFontInvalid, path, err)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrFontInvalid, path, err)
	}

	if got := f.NumGlyphs(); got < wantGlyphs {
		return fmt.Errorf("%w: %s has %d glyphs, manifest lists %d", ErrFontInvalid, path, got, wantGlyphs)
	}
	return nil
}

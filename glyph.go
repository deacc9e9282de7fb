package iconfont

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// idDelimiter separates the generator's glyph prefix from the human-facing
// icon identifier inside a raw glyph name.
const idDelimiter = "$"

// iconID extracts the icon identifier from a raw glyph name: the segment
// after the first "$", further "$" segments ignored ("x$y$z" yields "y").
// A name without a "$" is rejected rather than silently reused as the id.
func iconID(name string) (string, error) {
	parts := strings.Split(name, idDelimiter)
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrGlyphName, name)
	}
	return parts[1], nil
}

// normalizeResult returns a copy of r with each glyph's icon identifier
// rewritten to kebab-case. Names without a "$" pass through untouched; the
// builders report them later.
func normalizeResult(r *Result) *Result {
	out := &Result{FontName: r.FontName, Glyphs: make([]Glyph, len(r.Glyphs))}
	for i, g := range r.Glyphs {
		parts := strings.Split(g.Name, idDelimiter)
		if len(parts) >= 2 {
			parts[1] = strcase.ToKebab(parts[1])
			g.Name = strings.Join(parts, idDelimiter)
		}
		out.Glyphs[i] = g
	}
	return out
}

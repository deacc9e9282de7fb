package iconfont

import (
	"fmt"
	"strings"
)

// buildFontFace generates the @font-face block. The three source files are
// referenced by convention next to the stylesheet, named after the font.
func buildFontFace(fontName string) string {
	return fmt.Sprintf(`@font-face {
    font-family: "%[1]s";
    src: url("%[1]s.ttf") format("truetype"),
        url("%[1]s.woff2") format("woff2"),
        url("%[1]s.woff") format("woff");
    font-weight: normal;
    font-style: normal;
}
`, fontName)
}

// buildBaseRules generates the two static icon rules. They depend on the
// font name only, never on glyph data.
func buildBaseRules(fontName string) string {
	return fmt.Sprintf(`
.icon {
    display: inline-block;
    font-style: normal;
    font-weight: normal;
    font-variant: normal;
    line-height: 1;
    text-transform: none;
    -webkit-font-smoothing: antialiased;
    -moz-osx-font-smoothing: grayscale;
}

.icon:before {
    font-family: "%s";
    speak: never;
}
`, fontName)
}

// buildGlyphRule generates one per-icon rule. The codepoint lands as a CSS
// content escape, so "e901" renders as content: "\e901".
func buildGlyphRule(id, codepointHex string) string {
	return fmt.Sprintf(".icon-%s:before {\n    content: \"\\%s\";\n }\n", id, codepointHex)
}

// BuildCSS renders the stylesheet for a generation result: one @font-face
// block, the two static rules, then one rule per glyph in slice order.
// Pure: no I/O, byte-identical output for the same result.
func BuildCSS(r *Result) (string, error) {
	var b strings.Builder
	b.WriteString(buildFontFace(r.FontName))
	b.WriteString(buildBaseRules(r.FontName))

	for _, g := range r.Glyphs {
		id, err := iconID(g.Name)
		if err != nil {
			return "", fmt.Errorf("building css: %w", err)
		}
		b.WriteString(buildGlyphRule(id, g.CodepointHex))
	}

	return b.String(), nil
}

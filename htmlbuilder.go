package iconfont

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-iconfont/internal/assets"
)

// previewTemplateName is the shell template for the preview page.
const previewTemplateName = "preview"

// previewData feeds the preview shell template.
type previewData struct {
	FontName string
	Tags     template.HTML
}

// buildIconTags concatenates one <span><i></i></span> per glyph, in slice
// order. The id derivation is the same split BuildCSS uses, so the n-th tag
// always matches the n-th CSS rule.
func buildIconTags(r *Result) (string, error) {
	var b strings.Builder
	for _, g := range r.Glyphs {
		id, err := iconID(g.Name)
		if err != nil {
			return "", fmt.Errorf("building icon tags: %w", err)
		}
		fmt.Fprintf(&b, `<span><i class="apr apr-%s"></i></span>`, id)
	}
	return b.String(), nil
}

// BuildHTML renders the preview page for a generation result: the icon tags
// wrapped in a document shell that links <fontName>.css.
// Pure aside from reading the embedded shell template.
func BuildHTML(r *Result) (string, error) {
	tags, err := buildIconTags(r)
	if err != nil {
		return "", err
	}

	shell, err := assets.NewLoader("").LoadTemplate(previewTemplateName)
	if err != nil {
		return "", fmt.Errorf("loading preview shell: %w", err)
	}

	tmpl, err := template.New(previewTemplateName).Parse(shell)
	if err != nil {
		return "", fmt.Errorf("parsing preview shell: %w", err)
	}

	var b strings.Builder
	data := previewData{
		FontName: r.FontName,
		// The tags are built above from vetted pieces, never from user markup.
		Tags: template.HTML(tags), // #nosec G203
	}
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering preview shell: %w", err)
	}
	return b.String(), nil
}

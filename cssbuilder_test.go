package iconfont

// Notes:
// - BuildCSS: tests font-face block, static rules, per-glyph rules, ordering
// - buildGlyphRule: tests the exact byte shape of a per-icon rule
// - idempotence: same result object yields byte-identical output

import (
	"errors"
	"strings"
	"testing"
)

// demoResult returns a small fixed result for builder tests.
func demoResult() *Result {
	return &Result{
		FontName: "demo",
		Glyphs: []Glyph{
			{Key: "a", Name: "p$home", CodepointHex: "e901"},
			{Key: "b", Name: "p$search", CodepointHex: "e902"},
			{Key: "c", Name: "p$user", CodepointHex: "e903"},
		},
	}
}

// ---------------------------------------------------------------------------
// TestBuildGlyphRule - Per-Icon Rule Shape
// ---------------------------------------------------------------------------

func TestBuildGlyphRule(t *testing.T) {
	t.Parallel()

	got := buildGlyphRule("home", "e901")
	want := ".icon-home:before {\n    content: \"\\e901\";\n }\n"
	if got != want {
		t.Errorf("buildGlyphRule = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestBuildCSS - Stylesheet Generation
// ---------------------------------------------------------------------------

func TestBuildCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		result       *Result
		wantContains []string
		wantRules    int // per-glyph rules, counted via content escapes
		wantErr      error
	}{
		{
			name:   "single glyph scenario",
			result: &Result{FontName: "demo", Glyphs: []Glyph{{Key: "a", Name: "p$home", CodepointHex: "e901"}}},
			wantContains: []string{
				".icon-home:before {\n    content: \"\\e901\";\n }\n",
				`src: url("demo.ttf") format("truetype")`,
				`url("demo.woff2") format("woff2")`,
				`url("demo.woff") format("woff")`,
				`font-family: "demo";`,
				"@font-face {",
				".icon {",
				".icon:before {",
			},
			wantRules: 1,
		},
		{
			name:   "three glyphs",
			result: demoResult(),
			wantContains: []string{
				".icon-home:before",
				".icon-search:before",
				".icon-user:before",
			},
			wantRules: 3,
		},
		{
			name:   "empty glyph set keeps only static blocks",
			result: &Result{FontName: "empty"},
			wantContains: []string{
				"@font-face {",
				".icon {",
				".icon:before {",
			},
			wantRules: 0,
		},
		{
			name:    "glyph name without delimiter fails",
			result:  &Result{FontName: "bad", Glyphs: []Glyph{{Key: "a", Name: "home", CodepointHex: "e901"}}},
			wantErr: ErrGlyphName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BuildCSS(tt.result)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("BuildCSS error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildCSS unexpected error: %v", err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("BuildCSS output missing %q\noutput:\n%s", want, got)
				}
			}

			if rules := strings.Count(got, `content: "\`); rules != tt.wantRules {
				t.Errorf("BuildCSS per-glyph rule count = %d, want %d", rules, tt.wantRules)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuildCSSIdempotence - Deterministic Output
// ---------------------------------------------------------------------------

func TestBuildCSSIdempotence(t *testing.T) {
	t.Parallel()

	r := demoResult()

	first, err := BuildCSS(r)
	if err != nil {
		t.Fatalf("first BuildCSS: %v", err)
	}
	second, err := BuildCSS(r)
	if err != nil {
		t.Fatalf("second BuildCSS: %v", err)
	}

	if first != second {
		t.Error("BuildCSS is not byte-identical across calls with the same result")
	}
}

// ---------------------------------------------------------------------------
// TestBuildCSSRuleOrder - Glyph Order Preserved
// ---------------------------------------------------------------------------

func TestBuildCSSRuleOrder(t *testing.T) {
	t.Parallel()

	css, err := BuildCSS(demoResult())
	if err != nil {
		t.Fatalf("BuildCSS: %v", err)
	}

	home := strings.Index(css, ".icon-home:before")
	search := strings.Index(css, ".icon-search:before")
	user := strings.Index(css, ".icon-user:before")

	if home == -1 || search == -1 || user == -1 {
		t.Fatalf("missing rules in output:\n%s", css)
	}
	if !(home < search && search < user) {
		t.Errorf("rules out of order: home=%d search=%d user=%d", home, search, user)
	}
}

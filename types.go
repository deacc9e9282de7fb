package iconfont

import (
	"io"
	"sort"
	"time"

	"github.com/spf13/afero"
)

// Default values for the generator invocation. The font name is the literal
// used by the original build script; callers almost always override it.
const (
	DefaultFontName   = "cnfmvjgnbjgvnfdjkvnfbfgjkvndklcndfo"
	DefaultSVGPattern = "icons/*.svg"
	DefaultOutputDir  = "dist"
)

// Input contains the parameters for one font generation run.
type Input struct {
	FontName   string // font family name, used in file names and CSS selectors (required)
	SVGPattern string // glob matching the source SVG files
	OutputDir  string // directory the generator tool writes font files into
}

// Validate checks that required fields are present.
// A pattern matching zero files is not an error at this layer; that is the
// generator tool's call.
func (in Input) Validate() error {
	if in.FontName == "" {
		return ErrEmptyFontName
	}
	if in.SVGPattern == "" {
		return ErrEmptyPattern
	}
	return nil
}

// Glyph is the per-icon metadata reported by the generator.
type Glyph struct {
	Key          string // generator-internal key
	Name         string // raw name, "$"-delimited: "prefix$home" yields icon id "home"
	CodepointHex string // hexadecimal codepoint, e.g. "e901"
}

// Result is the outcome of one generator invocation. Glyphs carry a fixed
// order so the CSS rule list and the HTML tag list always line up.
type Result struct {
	FontName string
	Glyphs   []Glyph
}

// NewResult builds a Result from a key-to-glyph mapping, ordering glyphs by
// key. Go maps have no iteration order, so sorting is what keeps repeated
// runs byte-identical.
func NewResult(fontName string, glyphs map[string]Glyph) *Result {
	keys := make([]string, 0, len(glyphs))
	for k := range glyphs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make([]Glyph, 0, len(keys))
	for _, k := range keys {
		g := glyphs[k]
		g.Key = k
		ordered = append(ordered, g)
	}
	return &Result{FontName: fontName, Glyphs: ordered}
}

// Options tunes the external generator tool and post-generation checks.
// The zero value matches the original script's invocation.
type Options struct {
	FontHeight int  // target glyph height in font units (0 = tool default)
	Descent    int  // descent in font units
	Normalize  bool // let the tool normalize icon sizes
	SkipVerify bool // skip parsing the emitted TTF after generation
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	distDir   string
	kebabIDs  bool
	snapshot  bool
	timeout   time.Duration
	genOpts   *Options
}

// defaultTimeout bounds the snapshot render.
const defaultTimeout = 30 * time.Second

// WithDistDir overrides where the CSS and HTML outputs land. The default is
// a dist/ directory next to the running executable, independent of
// Input.OutputDir.
func WithDistDir(dir string) Option {
	if dir == "" {
		panic("iconfont: WithDistDir directory must not be empty")
	}
	return func(s *Service) {
		s.cfg.distDir = dir
	}
}

// WithGenerator replaces the font generator (e.g. a fake in tests).
func WithGenerator(g FontGenerator) Option {
	return func(s *Service) {
		s.generator = g
	}
}

// WithGeneratorOptions sets the options passed to the generator tool.
func WithGeneratorOptions(opts *Options) Option {
	return func(s *Service) {
		s.cfg.genOpts = opts
	}
}

// WithKebabIDs normalizes icon identifiers to kebab-case before CSS and HTML
// are built. Off by default: the raw identifier after the "$" is used as-is.
func WithKebabIDs(enabled bool) Option {
	return func(s *Service) {
		s.cfg.kebabIDs = enabled
	}
}

// WithSnapshot renders the HTML preview to <fontName>.png in the dist
// directory using headless Chrome once both writes have completed.
func WithSnapshot(enabled bool) Option {
	return func(s *Service) {
		s.cfg.snapshot = enabled
	}
}

// WithFS replaces the filesystem used for dist writes (e.g. an in-memory
// filesystem in tests).
func WithFS(fs afero.Fs) Option {
	return func(s *Service) {
		s.writer = &distWriter{fs: fs}
	}
}

// WithLogOutput redirects the success and error log lines, which default to
// stdout and stderr.
func WithLogOutput(out, errOut io.Writer) Option {
	return func(s *Service) {
		s.logOut = out
		s.logErr = errOut
	}
}

// WithTimeout sets the snapshot render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("iconfont: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

package iconfont

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// FontGenerator abstracts the external icon-font generator to allow different
// backends (and fakes in tests). Implementations produce the font files in
// Input.OutputDir and report per-glyph metadata.
type FontGenerator interface {
	Generate(ctx context.Context, in Input, opts *Options) (*Result, error)
}

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// DefaultTool is the generator binary invoked when none is configured.
const DefaultTool = "iconfontgen"

// ToolGenerator runs an external generator binary and parses the JSON glyph
// manifest it prints to stdout. The tool is expected to accept
//
//	<tool> --name <font> --input <glob> --output <dir> --manifest -
//
// and to write <font>.ttf, <font>.woff2 and <font>.woff into the output
// directory. The manifest format is documented on parseManifest.
type ToolGenerator struct {
	Tool   string
	Runner CommandRunner
}

// Compile-time interface check.
var _ FontGenerator = (*ToolGenerator)(nil)

// NewToolGenerator creates a ToolGenerator with a real command runner.
// An empty tool name selects DefaultTool.
func NewToolGenerator(tool string) *ToolGenerator {
	if tool == "" {
		tool = DefaultTool
	}
	return &ToolGenerator{Tool: tool, Runner: &ExecRunner{}}
}

// Generate invokes the tool and returns the parsed result, glyphs ordered by
// manifest key. Unless opts.SkipVerify is set, the emitted TTF is parsed as a
// sanity check before the result is returned.
func (g *ToolGenerator) Generate(ctx context.Context, in Input, opts *Options) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	stdout, stderr, err := g.Runner.Run(ctx, g.Tool, buildToolArgs(in, opts)...)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return nil, fmt.Errorf("%w: %s: %v", ErrGeneration, msg, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	res, err := parseManifest([]byte(stdout))
	if err != nil {
		return nil, err
	}

	if opts == nil || !opts.SkipVerify {
		ttfPath := filepath.Join(in.OutputDir, res.FontName+".ttf")
		if err := verifyFontFile(ttfPath, len(res.Glyphs)); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// buildToolArgs translates Input and Options into tool flags.
func buildToolArgs(in Input, opts *Options) []string {
	args := []string{
		"--name", in.FontName,
		"--input", in.SVGPattern,
		"--output", in.OutputDir,
		"--manifest", "-",
	}
	if opts == nil {
		return args
	}
	if opts.FontHeight > 0 {
		args = append(args, "--height", strconv.Itoa(opts.FontHeight))
	}
	if opts.Descent > 0 {
		args = append(args, "--descent", strconv.Itoa(opts.Descent))
	}
	if opts.Normalize {
		args = append(args, "--normalize")
	}
	return args
}

// manifest mirrors the tool's JSON output:
//
//	{
//	  "fontName": "demo",
//	  "glyphsData": {
//	    "home": {"name": "uE901$home", "codepointHexa": "e901"}
//	  }
//	}
type manifest struct {
	FontName   string                   `json:"fontName"`
	GlyphsData map[string]manifestGlyph `json:"glyphsData"`
}

type manifestGlyph struct {
	Name          string `json:"name"`
	CodepointHexa string `json:"codepointHexa"`
}

// parseManifest decodes the manifest and orders glyphs by key.
func parseManifest(data []byte) (*Result, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}
	if m.FontName == "" {
		return nil, fmt.Errorf("%w: missing fontName", ErrManifestParse)
	}

	glyphs := make(map[string]Glyph, len(m.GlyphsData))
	for key, mg := range m.GlyphsData {
		glyphs[key] = Glyph{Name: mg.Name, CodepointHex: mg.CodepointHexa}
	}
	return NewResult(m.FontName, glyphs), nil
}

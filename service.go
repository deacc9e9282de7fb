package iconfont

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Service orchestrates one font generation run: generator call, CSS and HTML
// assembly, dist writes, optional preview snapshot.
type Service struct {
	cfg         serviceConfig
	generator   FontGenerator
	writer      *distWriter
	snapshotter snapshotter
	logOut      io.Writer
	logErr      io.Writer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithDistDir, WithSnapshot).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			distDir: defaultDistDir(),
			timeout: defaultTimeout,
		},
		logOut: os.Stdout,
		logErr: os.Stderr,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create collaborators if not injected (e.g., by tests)
	if s.generator == nil {
		s.generator = NewToolGenerator(DefaultTool)
	}
	if s.writer == nil {
		s.writer = &distWriter{fs: afero.NewOsFs()}
	}
	s.writer.out = s.logOut
	s.writer.errOut = s.logErr
	if s.snapshotter == nil && s.cfg.snapshot {
		s.snapshotter = newRodSnapshotter(s.cfg.timeout)
	}

	return s
}

// Run drives the full pipeline. Failures are logged and swallowed: the
// generator rejecting, a write failing, or the snapshot failing never escape
// here and never abort the sibling tasks. The returned group lets a caller
// wait for the asynchronous work and inspect what went wrong.
func (s *Service) Run(ctx context.Context, in Input) *WriteGroup {
	g := &WriteGroup{}

	res, err := s.generator.Generate(ctx, in, s.cfg.genOpts)
	if err != nil {
		fmt.Fprintf(s.logErr, "iconfont: generation failed: %v\n", err)
		g.Record(err)
		return g
	}

	if s.cfg.kebabIDs {
		res = normalizeResult(res)
	}

	css, err := BuildCSS(res)
	if err != nil {
		fmt.Fprintf(s.logErr, "iconfont: %v\n", err)
		g.Record(err)
		return g
	}
	html, err := BuildHTML(res)
	if err != nil {
		fmt.Fprintf(s.logErr, "iconfont: %v\n", err)
		g.Record(err)
		return g
	}

	cssPath := filepath.Join(s.cfg.distDir, res.FontName+".css")
	htmlPath := filepath.Join(s.cfg.distDir, res.FontName+".html")

	cssDone := s.writer.Write(g, cssPath, css, "stylesheet")
	htmlDone := s.writer.Write(g, htmlPath, html, "preview page")

	if s.snapshotter != nil {
		pngPath := filepath.Join(s.cfg.distDir, res.FontName+".png")
		g.Go(func() {
			// The preview links the stylesheet by relative path, so both
			// files must be on disk before the browser loads the page.
			<-cssDone
			<-htmlDone
			if err := s.snapshotter.Snapshot(ctx, htmlPath, pngPath); err != nil {
				fmt.Fprintf(s.logErr, "iconfont: writing snapshot: %v\n", err)
				g.Record(err)
				return
			}
			fmt.Fprintf(s.logOut, "iconfont: wrote snapshot to %s\n", pngPath)
		})
	}

	return g
}

// Close releases resources (the snapshot browser, when one was started).
func (s *Service) Close() error {
	if s.snapshotter != nil {
		return s.snapshotter.Close()
	}
	return nil
}

// defaultDistDir anchors outputs to a dist/ directory next to the running
// executable, independent of Input.OutputDir. The original build script wrote
// relative to its own install location and callers rely on that.
func defaultDistDir() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultOutputDir
	}
	return filepath.Join(filepath.Dir(exe), DefaultOutputDir)
}

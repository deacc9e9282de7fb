package iconfont

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// snapshotter abstracts preview rendering to allow different backends.
type snapshotter interface {
	Snapshot(ctx context.Context, htmlPath, outPath string) error
	Close() error
}

// Compile-time interface check
var _ snapshotter = (*rodSnapshotter)(nil)

// rodSnapshotter renders the preview page to a PNG using headless Chrome.
// Rod automatically downloads Chromium on first run if not found.
type rodSnapshotter struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodSnapshotter creates a rodSnapshotter with the given timeout.
func newRodSnapshotter(timeout time.Duration) *rodSnapshotter {
	return &rodSnapshotter{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodSnapshotter) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodSnapshotter) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// Snapshot opens the preview page in headless Chrome and writes a full-page
// PNG screenshot to outPath.
func (r *rodSnapshotter) Snapshot(ctx context.Context, htmlPath, outPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.ensureBrowser(); err != nil {
		return err
	}

	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + abs})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	buf, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotRender, err)
	}

	if err := os.WriteFile(outPath, buf, filePerm); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotRender, err)
	}
	return nil
}

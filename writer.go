package iconfont

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/afero"
)

// WriteGroup tracks the asynchronous work a Run issues. Wait blocks until
// every write (and the snapshot, when enabled) has finished; Err reports what
// failed. Failures never cancel the other tasks.
type WriteGroup struct {
	wg sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// Go runs fn tracked by the group.
func (g *WriteGroup) Go(fn func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		fn()
	}()
}

// Record stores a task failure for later inspection via Err.
func (g *WriteGroup) Record(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.errs = append(g.errs, err)
}

// Wait blocks until all tracked tasks have completed.
func (g *WriteGroup) Wait() {
	g.wg.Wait()
}

// Err waits for all tasks and returns their failures joined, or nil.
// By design nothing in a Run propagates these; callers that want a non-zero
// exit code check Err themselves.
func (g *WriteGroup) Err() error {
	g.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}

// distWriter persists generated text files, logging outcome per file. Writes
// are fire-and-forget: a failure is logged with its label and recorded on the
// group, nothing more.
type distWriter struct {
	fs     afero.Fs
	out    io.Writer
	errOut io.Writer
}

// filePerm is the mode for generated CSS/HTML files.
const filePerm = 0o644

// Write persists content to path on its own goroutine, overwriting any
// existing file. Parent directories are not created: a missing dist/
// directory is a logged write failure, not something to repair here.
// Completion is signaled on the returned channel.
func (w *distWriter) Write(g *WriteGroup, path, content, label string) <-chan struct{} {
	done := make(chan struct{})
	g.Go(func() {
		defer close(done)
		if err := afero.WriteFile(w.fs, path, []byte(content), filePerm); err != nil {
			fmt.Fprintf(w.errOut, "iconfont: writing %s: %v\n", label, err)
			g.Record(fmt.Errorf("%w: %s: %v", ErrWriteFailed, label, err))
			return
		}
		fmt.Fprintf(w.out, "iconfont: wrote %s to %s\n", label, path)
	})
	return done
}

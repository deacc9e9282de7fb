package main

// Notes:
// - run: tests the swallow-by-default policy and --strict propagation
// - buildService: tests config-to-service wiring of the Input

import (
	"context"
	"errors"
	"testing"

	iconfont "github.com/alnah/go-iconfont"
	"github.com/alnah/go-iconfont/internal/config"
)

// fakeService returns a pre-populated WriteGroup.
type fakeService struct {
	group    *iconfont.WriteGroup
	gotInput iconfont.Input
	closed   bool
}

func (s *fakeService) Run(_ context.Context, in iconfont.Input) *iconfont.WriteGroup {
	s.gotInput = in
	return s.group
}

func (s *fakeService) Close() error {
	s.closed = true
	return nil
}

// groupWithError builds a completed WriteGroup carrying err.
func groupWithError(err error) *iconfont.WriteGroup {
	g := &iconfont.WriteGroup{}
	g.Record(err)
	return g
}

// ---------------------------------------------------------------------------
// TestRun - Strict vs Default
// ---------------------------------------------------------------------------

func TestRun(t *testing.T) {
	t.Parallel()

	in := iconfont.Input{FontName: "demo", SVGPattern: "icons/*.svg", OutputDir: "dist"}

	t.Run("clean run", func(t *testing.T) {
		t.Parallel()

		svc := &fakeService{group: &iconfont.WriteGroup{}}
		if err := run(context.Background(), svc, in, false); err != nil {
			t.Fatalf("run returned %v, want nil", err)
		}
		if svc.gotInput != in {
			t.Errorf("service received %+v, want %+v", svc.gotInput, in)
		}
	})

	t.Run("default mode swallows failures", func(t *testing.T) {
		t.Parallel()

		svc := &fakeService{group: groupWithError(iconfont.ErrWriteFailed)}
		if err := run(context.Background(), svc, in, false); err != nil {
			t.Fatalf("run returned %v, want nil (log-and-swallow)", err)
		}
	})

	t.Run("strict mode propagates failures", func(t *testing.T) {
		t.Parallel()

		svc := &fakeService{group: groupWithError(iconfont.ErrWriteFailed)}
		err := run(context.Background(), svc, in, true)
		if !errors.Is(err, iconfont.ErrWriteFailed) {
			t.Fatalf("run returned %v, want %v", err, iconfont.ErrWriteFailed)
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuildService - Config Wiring
// ---------------------------------------------------------------------------

func TestBuildService(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Font.Name = "brand"
	cfg.Font.Input = "svg/*.svg"
	cfg.Font.Output = "fonts"

	svc, in := buildService(cfg)
	defer svc.Close()

	want := iconfont.Input{FontName: "brand", SVGPattern: "svg/*.svg", OutputDir: "fonts"}
	if in != want {
		t.Errorf("input = %+v, want %+v", in, want)
	}
	if svc == nil {
		t.Fatal("buildService returned nil service")
	}
}

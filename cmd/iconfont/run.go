package main

import (
	"context"

	iconfont "github.com/alnah/go-iconfont"
	"github.com/alnah/go-iconfont/internal/config"
)

// Runner is the interface for the generation service.
type Runner interface {
	Run(ctx context.Context, in iconfont.Input) *iconfont.WriteGroup
	Close() error
}

// buildService assembles a Service and Input from the merged configuration.
func buildService(cfg *config.Config) (*iconfont.Service, iconfont.Input) {
	opts := []iconfont.Option{
		iconfont.WithGenerator(iconfont.NewToolGenerator(cfg.Generator.Tool)),
		iconfont.WithGeneratorOptions(&iconfont.Options{
			FontHeight: cfg.Generator.Height,
			Descent:    cfg.Generator.Descent,
			Normalize:  cfg.Generator.Normalize,
			SkipVerify: !cfg.Generator.Verify,
		}),
		iconfont.WithKebabIDs(cfg.IDs.Kebab),
		iconfont.WithSnapshot(cfg.Snapshot.Enabled),
	}
	if cfg.Dist.Dir != "" {
		opts = append(opts, iconfont.WithDistDir(cfg.Dist.Dir))
	}

	in := iconfont.Input{
		FontName:   cfg.Font.Name,
		SVGPattern: cfg.Font.Input,
		OutputDir:  cfg.Font.Output,
	}
	return iconfont.New(opts...), in
}

// run drives one generation and waits for the asynchronous writes.
// In strict mode the collected failures come back as an error; otherwise the
// script-level log-and-swallow policy applies and run always returns nil.
func run(ctx context.Context, svc Runner, in iconfont.Input, strict bool) error {
	group := svc.Run(ctx, in)
	group.Wait()

	if strict {
		return group.Err()
	}
	return nil
}

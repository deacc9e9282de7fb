package main

import (
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-iconfont/internal/config"
)

// cliFlags holds parsed command-line flags. Empty string / false means the
// flag was not set and the config (or default) value stands.
type cliFlags struct {
	name       string
	input      string
	output     string
	distDir    string
	configName string
	tool       string
	kebab      bool
	snapshot   bool
	strict     bool
	verbose    bool
	version    bool
}

// parseFlags parses args (without the program name) into cliFlags.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("iconfont", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.name, "name", "n", "", "font family name")
	fs.StringVarP(&f.input, "input", "i", "", "glob pattern matching the source SVG files")
	fs.StringVarP(&f.output, "output", "o", "", "directory for the generated font files")
	fs.StringVar(&f.distDir, "dist", "", "directory for the CSS/HTML outputs (default: dist/ next to the executable)")
	fs.StringVarP(&f.configName, "config", "c", "", "config file name or path")
	fs.StringVar(&f.tool, "tool", "", "generator binary to invoke")
	fs.BoolVar(&f.kebab, "kebab", false, "normalize icon identifiers to kebab-case")
	fs.BoolVar(&f.snapshot, "snapshot", false, "render a PNG snapshot of the preview page")
	fs.BoolVar(&f.strict, "strict", false, "exit non-zero when generation or a write fails")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// mergeFlags overlays set flags onto the configuration. Flags win over the
// config file, which wins over defaults.
func mergeFlags(cfg *config.Config, f *cliFlags) {
	if f.name != "" {
		cfg.Font.Name = f.name
	}
	if f.input != "" {
		cfg.Font.Input = f.input
	}
	if f.output != "" {
		cfg.Font.Output = f.output
	}
	if f.distDir != "" {
		cfg.Dist.Dir = f.distDir
	}
	if f.tool != "" {
		cfg.Generator.Tool = f.tool
	}
	if f.kebab {
		cfg.IDs.Kebab = true
	}
	if f.snapshot {
		cfg.Snapshot.Enabled = true
	}
}

package main

// Notes:
// - parseFlags: tests long/short flags and unknown flag rejection
// - mergeFlags: tests flag-over-config precedence

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-iconfont/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag Parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    *cliFlags
		wantErr bool
	}{
		{
			name: "no args",
			args: nil,
			want: &cliFlags{},
		},
		{
			name: "long flags",
			args: []string{"--name", "brand", "--input", "svg/*.svg", "--output", "fonts", "--dist", "public", "--tool", "fantasticon", "--kebab", "--snapshot", "--strict"},
			want: &cliFlags{
				name:     "brand",
				input:    "svg/*.svg",
				output:   "fonts",
				distDir:  "public",
				tool:     "fantasticon",
				kebab:    true,
				snapshot: true,
				strict:   true,
			},
		},
		{
			name: "short flags",
			args: []string{"-n", "brand", "-i", "svg/*.svg", "-o", "fonts", "-c", "build", "-v"},
			want: &cliFlags{
				name:       "brand",
				input:      "svg/*.svg",
				output:     "fonts",
				configName: "build",
				verbose:    true,
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(cliFlags{})); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - Precedence
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("set flags win over config", func(t *testing.T) {
		t.Parallel()

		cfg := config.Default()
		cfg.Font.Name = "from-config"
		cfg.Generator.Tool = "config-tool"

		mergeFlags(cfg, &cliFlags{name: "from-flag", kebab: true})

		if cfg.Font.Name != "from-flag" {
			t.Errorf("font name = %q, want flag value", cfg.Font.Name)
		}
		if cfg.Generator.Tool != "config-tool" {
			t.Errorf("tool = %q, config value should stand", cfg.Generator.Tool)
		}
		if !cfg.IDs.Kebab {
			t.Error("kebab flag not applied")
		}
	})

	t.Run("unset flags leave defaults", func(t *testing.T) {
		t.Parallel()

		cfg := config.Default()
		want := config.Default()
		mergeFlags(cfg, &cliFlags{})

		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config changed by empty flags (-want +got):\n%s", diff)
		}
	})
}

package main

// Notes:
// - loadSettings: we test precedence flags > env > file > defaults and the
//   unknown variable warning. newSession is covered through runMain tests.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-sdkstore/internal/config"
)

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sdkstore.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestLoadSettings_Precedence - flags > env > file > defaults
// ---------------------------------------------------------------------------

func TestLoadSettings_Precedence(t *testing.T) {
	t.Parallel()

	cfgPath := writeTestConfig(t, `
app: filegame
storage:
  internalRoot: /file/internal
  externalRoot: /file/external
assets:
  basePath: /file/assets
copy:
  bufferSize: 512
`)

	var stderr bytes.Buffer
	env := &Environment{
		Stderr: &stderr,
		Environ: []string{
			"SDKSTORE_CONFIG=" + cfgPath,
			"SDKSTORE_APP=envgame",
			"SDKSTORE_INTERNAL_ROOT=/env/internal",
			"SDKSTORE_BUFFER_SIZE=2048",
		},
	}
	f := &commonFlags{internalRoot: "/flag/internal", verbose: true}

	cfg, err := loadSettings(f, env)
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}

	tests := []struct {
		field string
		got   any
		want  any
	}{
		{"app (env over file)", cfg.App, "envgame"},
		{"internal root (flag over env)", cfg.Storage.InternalRoot, "/flag/internal"},
		{"external root (file)", cfg.Storage.ExternalRoot, "/file/external"},
		{"asset path (file)", cfg.Assets.BasePath, "/file/assets"},
		{"buffer size (env over file)", cfg.Copy.BufferSize, 2048},
		{"debug (flag)", cfg.Log.Debug, true},
		{"certificate name (default)", cfg.Certificate.Name, config.DefaultCertificateName},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.field, tt.got, tt.want)
		}
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadSettings(&commonFlags{}, &Environment{Stderr: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if cfg.App != config.DefaultAppName {
		t.Errorf("App = %q, want %q", cfg.App, config.DefaultAppName)
	}
	if cfg.Copy.BufferSize != config.DefaultBuffer {
		t.Errorf("Copy.BufferSize = %d, want %d", cfg.Copy.BufferSize, config.DefaultBuffer)
	}
	if !cfg.Storage.UseExternalForMods {
		t.Error("Storage.UseExternalForMods = false, want default true")
	}
}

func TestLoadSettings_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		flags    commonFlags
		environ  []string
		wantErr  error
		wantHint bool
	}{
		{
			name:     "config name not found",
			flags:    commonFlags{config: "sdkstore-missing-config-xyz"},
			wantErr:  config.ErrConfigNotFound,
			wantHint: true,
		},
		{
			name:    "config path not found",
			flags:   commonFlags{config: filepath.Join(os.TempDir(), "sdkstore-missing", "c.yaml")},
			wantErr: config.ErrConfigNotFound,
		},
		{
			name:    "bad env value",
			environ: []string{"SDKSTORE_BUFFER_SIZE=huge"},
			wantErr: ErrUsage,
		},
		{
			name:    "relative root flag",
			flags:   commonFlags{internalRoot: "rel"},
			wantErr: config.ErrInvalidField,
		},
		{
			name:    "buffer too large from env",
			environ: []string{"SDKSTORE_BUFFER_SIZE=99999999"},
			wantErr: config.ErrInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := &Environment{Stderr: &bytes.Buffer{}, Environ: tt.environ}
			_, err := loadSettings(&tt.flags, env)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("loadSettings() error = %v, want %v", err, tt.wantErr)
			}
			if got := hintFor(err) != ""; got != tt.wantHint {
				t.Errorf("hint present = %v, want %v", got, tt.wantHint)
			}
		})
	}
}

func TestLoadSettings_WarnsUnknownEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		quiet    bool
		wantWarn bool
	}{
		{name: "warns by default", quiet: false, wantWarn: true},
		{name: "quiet suppresses warning", quiet: true, wantWarn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			env := &Environment{Stderr: &stderr, Environ: []string{"SDKSTORE_INTERNL_ROOT=/typo"}}
			if _, err := loadSettings(&commonFlags{quiet: tt.quiet}, env); err != nil {
				t.Fatalf("loadSettings() error = %v", err)
			}
			got := strings.Contains(stderr.String(), "unknown environment variable SDKSTORE_INTERNL_ROOT")
			if got != tt.wantWarn {
				t.Errorf("warning printed = %v, want %v (stderr %q)", got, tt.wantWarn, stderr.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunConfig - Effective configuration output
// ---------------------------------------------------------------------------

func TestRunConfig(t *testing.T) {
	t.Parallel()

	internal := t.TempDir()
	r := runCLI(t, []string{"SDKSTORE_APP=envgame"}, "config", "--internal-root", internal)
	if r.code != ExitSuccess {
		t.Fatalf("config exit = %d, stderr: %s", r.code, r.stderr)
	}
	if !containsAll(r.stdout, "app: envgame", "internalRoot: "+internal, "bufferSize: 1024") {
		t.Errorf("config output missing merged values:\n%s", r.stdout)
	}
}

func TestRunConfig_MissingNamedConfig(t *testing.T) {
	t.Parallel()

	r := runCLI(t, nil, "config", "-c", "sdkstore-missing-config-xyz")
	if r.code != ExitUsage {
		t.Errorf("config exit = %d, want %d", r.code, ExitUsage)
	}
	if !strings.Contains(r.stderr, "hint: use --config") {
		t.Errorf("stderr should carry the config hint, got %q", r.stderr)
	}
}

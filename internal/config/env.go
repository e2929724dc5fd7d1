package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is shared by every recognized environment variable.
const EnvPrefix = "SDKSTORE_"

// Env holds configuration from environment variables.
// Pointer fields distinguish "unset" from an explicit false or zero.
type Env struct {
	ConfigPath   string `env:"SDKSTORE_CONFIG"`
	App          string `env:"SDKSTORE_APP"`
	InternalRoot string `env:"SDKSTORE_INTERNAL_ROOT"`
	ExternalRoot string `env:"SDKSTORE_EXTERNAL_ROOT"`
	UseExternal  *bool  `env:"SDKSTORE_USE_EXTERNAL"`
	AssetPath    string `env:"SDKSTORE_ASSET_PATH"`
	BufferSize   *int   `env:"SDKSTORE_BUFFER_SIZE"`
	LogDebug     *bool  `env:"SDKSTORE_LOG_DEBUG"`
	LogJSON      *bool  `env:"SDKSTORE_LOG_JSON"`
}

// knownEnvVars lists valid SDKSTORE_* variables, used to flag typos.
var knownEnvVars = []string{
	"SDKSTORE_CONFIG",
	"SDKSTORE_APP",
	"SDKSTORE_INTERNAL_ROOT",
	"SDKSTORE_EXTERNAL_ROOT",
	"SDKSTORE_USE_EXTERNAL",
	"SDKSTORE_ASSET_PATH",
	"SDKSTORE_BUFFER_SIZE",
	"SDKSTORE_LOG_DEBUG",
	"SDKSTORE_LOG_JSON",
}

// LoadEnv parses SDKSTORE_* variables from the process environment.
func LoadEnv() (*Env, error) {
	return parseEnv(env.Options{})
}

// LoadEnvFrom parses SDKSTORE_* variables from the given map instead of the
// process environment.
func LoadEnvFrom(vars map[string]string) (*Env, error) {
	return parseEnv(env.Options{Environment: vars})
}

func parseEnv(opts env.Options) (*Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &e, nil
}

// Apply overlays every variable that was set onto cfg.
// Precedence is CLI flags > env vars > config file > defaults; flags are
// applied afterwards by the caller.
func (e *Env) Apply(cfg *Config) {
	if e.App != "" {
		cfg.App = e.App
	}
	if e.InternalRoot != "" {
		cfg.Storage.InternalRoot = e.InternalRoot
	}
	if e.ExternalRoot != "" {
		cfg.Storage.ExternalRoot = e.ExternalRoot
	}
	if e.UseExternal != nil {
		cfg.Storage.UseExternalForMods = *e.UseExternal
	}
	if e.AssetPath != "" {
		cfg.Assets.BasePath = e.AssetPath
	}
	if e.BufferSize != nil {
		cfg.Copy.BufferSize = *e.BufferSize
	}
	if e.LogDebug != nil {
		cfg.Log.Debug = *e.LogDebug
	}
	if e.LogJSON != nil {
		cfg.Log.JSON = *e.LogJSON
	}
}

// UnknownEnvVars returns SDKSTORE_* names in environ that are not recognized.
// environ uses the os.Environ "KEY=value" format.
func UnknownEnvVars(environ []string) []string {
	var unknown []string
	for _, kv := range environ {
		if !strings.HasPrefix(kv, EnvPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !slices.Contains(knownEnvVars, name) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

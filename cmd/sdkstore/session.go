package main

import (
	"fmt"
	"log/slog"

	"github.com/alnah/go-sdkstore"
	"github.com/alnah/go-sdkstore/internal/config"
	"github.com/alnah/go-sdkstore/internal/fileutil"
	"github.com/alnah/go-sdkstore/internal/hints"
	"github.com/alnah/go-sdkstore/internal/logging"
)

// session is the wired library state shared by commands.
type session struct {
	cfg   *config.Config
	log   *slog.Logger
	paths *sdkstore.DirPaths
	m     *sdkstore.Materializer
}

// loadSettings merges configuration sources.
// Precedence: CLI flags > SDKSTORE_* env vars > config file > defaults.
func loadSettings(f *commonFlags, env *Environment) (*config.Config, error) {
	envCfg, err := config.LoadEnvFrom(env.vars())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if !f.quiet {
		for _, name := range config.UnknownEnvVars(env.Environ) {
			fmt.Fprintf(env.Stderr, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}

	cfg := config.DefaultConfig()
	name := f.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			err = fmt.Errorf("loading config: %w", err)
			if !fileutil.IsFilePath(name) {
				err = withHint(err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
	}

	envCfg.Apply(cfg)
	mergeFlags(f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}

// mergeFlags applies explicitly set CLI flags to cfg.
func mergeFlags(f *commonFlags, cfg *config.Config) {
	if f.internalRoot != "" {
		cfg.Storage.InternalRoot = f.internalRoot
	}
	if f.externalRoot != "" {
		cfg.Storage.ExternalRoot = f.externalRoot
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.verbose {
		cfg.Log.Debug = true
	}
	if f.logJSON {
		cfg.Log.JSON = true
	}
}

// newLogger builds the CLI logger on env.Stderr.
func newLogger(cfg *config.Config, f *commonFlags, env *Environment) *slog.Logger {
	return logging.New(logging.Options{
		Debug:   cfg.Log.Debug,
		Quiet:   f.quiet,
		JSON:    cfg.Log.JSON,
		NoColor: env.vars()["NO_COLOR"] != "",
		Service: "sdkstore",
		Version: Version,
		RunID:   true,
		Writer:  env.Stderr,
	})
}

// newSession resolves storage roots and builds the Materializer.
// Roots left empty by every configuration source fall back to the host defaults.
func newSession(f *commonFlags, env *Environment) (*session, error) {
	cfg, err := loadSettings(f, env)
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg, f, env)

	internal, external := cfg.Storage.InternalRoot, cfg.Storage.ExternalRoot
	if internal == "" || external == "" {
		hostInternal, hostExternal, err := sdkstore.HostRoots(cfg.App)
		if err != nil && internal == "" {
			return nil, err
		}
		if internal == "" {
			internal = hostInternal
		}
		if external == "" {
			external = hostExternal
		}
	}

	paths, err := sdkstore.NewDirPaths(internal, external)
	if err != nil {
		return nil, withHint(err, hints.ForDirectoryCreate(internal))
	}

	source, err := sdkstore.NewAssetSource(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}

	log.Debug("storage roots",
		slog.String("internal", internal),
		slog.String("external", external),
		slog.String("assets", cfg.Assets.BasePath))

	m := sdkstore.New(paths, source,
		sdkstore.WithLogger(log),
		sdkstore.WithBufferSize(cfg.Copy.BufferSize),
		sdkstore.WithExternalStorage(cfg.Storage.UseExternalForMods),
		sdkstore.WithCertificate(cfg.Certificate.Name, cfg.Certificate.Dir),
	)

	return &session{cfg: cfg, log: log, paths: paths, m: m}, nil
}

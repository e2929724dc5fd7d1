package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/alnah/go-sdkstore"
	"github.com/alnah/go-sdkstore/internal/hints"
	"github.com/alnah/go-sdkstore/internal/yamlutil"
	flag "github.com/spf13/pflag"
)

// pathsReport is the output of the paths command.
type pathsReport struct {
	Internal          string `json:"internal"`
	External          string `json:"external,omitempty"`
	ExternalAvailable bool   `json:"external_available"`
	ModsDirectory     string `json:"mods_directory"`
	Certificate       string `json:"certificate"`
}

// runCert materializes the trust certificate and prints its path.
func runCert(args []string, env *Environment) error {
	f, err := parseCertFlags(args, env)
	if err != nil {
		return helpOrErr(err)
	}
	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	path, err := s.m.CertificatePath()
	if err != nil {
		return withHint(err, hintForPath(err, path))
	}

	if f.verify {
		if _, err := s.m.TrustPool(); err != nil {
			return withHint(err, hints.ForCertificate(path))
		}
		s.log.Info("certificate verified", slog.String("path", path))
	}

	fmt.Fprintln(env.Stdout, path)
	return nil
}

// runMaterialize copies one bundled asset and prints its path.
func runMaterialize(args []string, env *Environment) error {
	f, asset, err := parseMaterializeFlags(args, env)
	if err != nil {
		return helpOrErr(err)
	}
	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	root := s.m.ResolveStorageRoot(f.external)
	if f.external && root.Kind != sdkstore.External {
		s.log.Warn("external storage unavailable, using internal storage", slog.String("path", root.Path))
	}

	dir := root.Path
	switch {
	case f.dir == "":
	case filepath.IsAbs(f.dir):
		dir = f.dir
	default:
		dir = filepath.Join(root.Path, f.dir)
	}

	path, err := s.m.Materialize(asset, dir)
	if err != nil {
		return withHint(err, hintForPath(err, path))
	}

	fmt.Fprintln(env.Stdout, path)
	return nil
}

// runPaths prints the resolved storage layout without writing anything.
func runPaths(args []string, env *Environment) error {
	f, err := parseOutputFlags("paths", printPathsUsage, true, args, env)
	if err != nil {
		return helpOrErr(err)
	}
	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	external, ok := s.paths.ExternalRoot()
	report := pathsReport{
		Internal:          s.m.InternalStorageDirectory(),
		External:          external,
		ExternalAvailable: ok,
		ModsDirectory:     s.m.ExternalStorageDirectory(),
		Certificate:       filepath.Join(s.paths.InternalRoot(), s.cfg.Certificate.Dir, s.cfg.Certificate.Name),
	}

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(env.Stdout, "internal:    %s\n", report.Internal)
	if report.ExternalAvailable {
		fmt.Fprintf(env.Stdout, "external:    %s\n", report.External)
	} else {
		fmt.Fprintln(env.Stdout, "external:    (unavailable)")
	}
	fmt.Fprintf(env.Stdout, "mods:        %s\n", report.ModsDirectory)
	fmt.Fprintf(env.Stdout, "certificate: %s\n", report.Certificate)
	return nil
}

// runAssets lists the bundled asset names.
func runAssets(args []string, env *Environment) error {
	f, err := parseOutputFlags("assets", printAssetsUsage, true, args, env)
	if err != nil {
		return helpOrErr(err)
	}

	names := sdkstore.BundledAssets()
	if f.json {
		return json.NewEncoder(env.Stdout).Encode(names)
	}
	for _, name := range names {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	f, err := parseOutputFlags("config", printConfigUsage, false, args, env)
	if err != nil {
		return helpOrErr(err)
	}
	cfg, err := loadSettings(&f.common, env)
	if err != nil {
		return err
	}
	return yamlutil.Encode(env.Stdout, cfg)
}

// helpOrErr turns a help request into success; usage was already printed.
func helpOrErr(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

// hintForPath picks a hint that names the path involved in err.
func hintForPath(err error, path string) string {
	switch {
	case errors.Is(err, sdkstore.ErrDirectoryCreate):
		return hints.ForDirectoryCreate(filepath.Dir(path))
	}
	return hintFor(err)
}

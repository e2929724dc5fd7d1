package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/alnah/go-sdkstore"
	"github.com/alnah/go-sdkstore/internal/fileutil"
	"github.com/alnah/go-sdkstore/internal/hints"
	flag "github.com/spf13/pflag"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status      string      `json:"status"` // "ready", "warnings", "errors"
	Storage     storageInfo `json:"storage"`
	Certificate certInfo    `json:"certificate"`
	System      systemInfo  `json:"system"`
	Warnings    []string    `json:"warnings,omitempty"`
	Errors      []string    `json:"errors,omitempty"`
}

// storageInfo holds storage root checks.
type storageInfo struct {
	Internal          string `json:"internal,omitempty"`
	InternalWritable  bool   `json:"internal_writable"`
	External          string `json:"external,omitempty"`
	ExternalAvailable bool   `json:"external_available"`
	ModsDirectory     string `json:"mods_directory,omitempty"`
}

// certInfo holds trust certificate checks.
type certInfo struct {
	Path      string `json:"path,omitempty"`
	Present   bool   `json:"present"`
	Parseable bool   `json:"parseable"`
}

// systemInfo holds platform and bundle details.
type systemInfo struct {
	OS        string   `json:"os"`
	Arch      string   `json:"arch"`
	AssetPath string   `json:"asset_path,omitempty"`
	Bundled   []string `json:"bundled_assets"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	f, err := parseOutputFlags("doctor", printDoctorUsage, true, args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	result := runDoctor(&f.common, env)

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(f *commonFlags, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
			Bundled: sdkstore.BundledAssets(),
		},
	}

	s, err := newSession(f, env)
	if err != nil {
		result.Errors = append(result.Errors, err.Error()+hintFor(err))
	} else {
		result.System.AssetPath = s.cfg.Assets.BasePath
		checkStorage(result, s)
		checkCertificate(result, s)
	}

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkStorage verifies the internal root is writable and probes external storage.
func checkStorage(result *doctorResult, s *session) {
	internal := s.paths.InternalRoot()
	result.Storage.Internal = internal
	result.Storage.ModsDirectory = s.m.ExternalStorageDirectory()

	if err := fileutil.CheckWritable(internal); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Internal storage not writable: %v%s", err, hints.ForDirectoryCreate(internal)))
	} else {
		result.Storage.InternalWritable = true
	}

	if ext, ok := s.paths.ExternalRoot(); ok {
		result.Storage.External = ext
		result.Storage.ExternalAvailable = true
	} else if s.cfg.Storage.ExternalRoot != "" {
		result.Storage.External = s.cfg.Storage.ExternalRoot
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("External storage %s is not mounted%s", s.cfg.Storage.ExternalRoot, hints.ForExternalUnavailable()))
	}
}

// checkCertificate materializes the certificate if needed and parses it.
func checkCertificate(result *doctorResult, s *session) {
	path, err := s.m.CertificatePath()
	result.Certificate.Path = path
	result.Certificate.Present = fileutil.FileExists(path)
	if err != nil && !result.Certificate.Present {
		result.Errors = append(result.Errors, fmt.Sprintf("Certificate unavailable: %v%s", err, hintFor(err)))
		return
	}

	if _, err := sdkstore.LoadCertPool(path); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Certificate unusable: %v%s", err, hints.ForCertificate(path)))
		return
	}
	result.Certificate.Parseable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "sdkstore doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Storage")
	if r.Storage.InternalWritable {
		fmt.Fprintf(w, "  [OK] Internal: %s (writable)\n", r.Storage.Internal)
	} else if r.Storage.Internal != "" {
		fmt.Fprintf(w, "  [ERROR] Internal: %s (not writable)\n", r.Storage.Internal)
	}
	switch {
	case r.Storage.ExternalAvailable:
		fmt.Fprintf(w, "  [OK] External: %s\n", r.Storage.External)
	case r.Storage.External != "":
		fmt.Fprintf(w, "  [WARN] External: %s (not mounted)\n", r.Storage.External)
	default:
		fmt.Fprintln(w, "  [OK] External: not configured")
	}
	if r.Storage.ModsDirectory != "" {
		fmt.Fprintf(w, "  [OK] Mods: %s\n", r.Storage.ModsDirectory)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Certificate")
	switch {
	case r.Certificate.Parseable:
		fmt.Fprintf(w, "  [OK] %s\n", r.Certificate.Path)
	case r.Certificate.Present:
		fmt.Fprintf(w, "  [ERROR] %s (unparseable)\n", r.Certificate.Path)
	default:
		fmt.Fprintln(w, "  [ERROR] Not available")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.System.OS, r.System.Arch)
	fmt.Fprintf(w, "  [OK] Bundled assets: %s\n", strings.Join(r.System.Bundled, ", "))
	if r.System.AssetPath != "" {
		fmt.Fprintf(w, "  [OK] Asset override: %s\n", r.System.AssetPath)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config       string
	quiet        bool
	verbose      bool
	logJSON      bool
	internalRoot string
	externalRoot string
	assetPath    string
}

// certFlags holds flags for the cert command.
type certFlags struct {
	common commonFlags
	verify bool
}

// materializeFlags holds flags for the materialize command.
type materializeFlags struct {
	common   commonFlags
	dir      string
	external bool
}

// outputFlags holds flags for commands with a machine-readable mode.
type outputFlags struct {
	common commonFlags
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
	fs.BoolVar(&f.logJSON, "log-json", false, "write logs as JSON lines")
	fs.StringVar(&f.internalRoot, "internal-root", "", "internal storage root (absolute)")
	fs.StringVar(&f.externalRoot, "external-root", "", "external storage root (absolute)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding bundled assets")
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), env *Environment) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { usage(env.Stderr) }
	return fs
}

// parseArgs parses args into fs, mapping parse failures to ErrUsage.
// A help request returns flag.ErrHelp unchanged.
func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// parseCertFlags parses cert command flags.
func parseCertFlags(args []string, env *Environment) (*certFlags, error) {
	f := &certFlags{}
	fs := newFlagSet("cert", printCertUsage, env)
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.verify, "verify", false, "load the certificate into a trust pool")

	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: cert takes no arguments", ErrUsage)
	}
	return f, nil
}

// parseMaterializeFlags parses materialize command flags and returns the asset name.
func parseMaterializeFlags(args []string, env *Environment) (*materializeFlags, string, error) {
	f := &materializeFlags{}
	fs := newFlagSet("materialize", printMaterializeUsage, env)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.dir, "dir", "d", "", "target directory (relative paths are under the storage root)")
	fs.BoolVar(&f.external, "external", false, "prefer external storage when available")

	if err := parseArgs(fs, args); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 1 {
		return nil, "", fmt.Errorf("%w: materialize needs exactly one asset name", ErrUsage)
	}
	return f, fs.Arg(0), nil
}

// parseOutputFlags parses flags for paths, assets, config and doctor.
func parseOutputFlags(name string, usage func(io.Writer), withJSON bool, args []string, env *Environment) (*outputFlags, error) {
	f := &outputFlags{}
	fs := newFlagSet(name, usage, env)
	addCommonFlags(fs, &f.common)
	if withJSON {
		fs.BoolVar(&f.json, "json", false, "output JSON")
	}

	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s takes no arguments", ErrUsage, name)
	}
	return f, nil
}

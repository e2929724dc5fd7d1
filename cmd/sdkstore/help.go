package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sdkstore <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  cert          Copy the trust certificate to internal storage and print its path")
	fmt.Fprintln(w, "  materialize   Copy a bundled asset to storage and print its path")
	fmt.Fprintln(w, "  paths         Show the resolved storage roots")
	fmt.Fprintln(w, "  assets        List bundled assets")
	fmt.Fprintln(w, "  config        Print the effective configuration")
	fmt.Fprintln(w, "  doctor        Check storage and certificate health")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sdkstore help <command>' for details on a specific command.")
}

// printCommonFlags prints flags shared by every command.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "      --internal-root <dir>  Internal storage root (absolute)")
	fmt.Fprintln(w, "      --external-root <dir>  External storage root (absolute)")
	fmt.Fprintln(w, "      --asset-path <dir>     Directory overriding bundled assets")
	fmt.Fprintln(w, "  -q, --quiet                Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose              Show debug logs")
	fmt.Fprintln(w, "      --log-json             Write logs as JSON lines")
}

// printCertUsage prints usage for the cert command.
func printCertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sdkstore cert [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Copy the bundled trust certificate into {internal}/Certificates on first use")
	fmt.Fprintln(w, "and print its path. An existing file is never overwritten.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --verify               Also parse the certificate into a trust pool")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printMaterializeUsage prints usage for the materialize command.
func printMaterializeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sdkstore materialize <asset> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Copy a bundled asset into storage unless it already exists.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --dir <path>           Target directory (relative = under the storage root)")
	fmt.Fprintln(w, "      --external             Prefer external storage when available")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printPathsUsage prints usage for the paths command.
func printPathsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sdkstore paths [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the internal, external and mods directories. Nothing is copied.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                 Output JSON")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printAssetsUsage prints usage for the assets command.
func printAssetsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sdkstore assets [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the assets compiled into the binary.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                 Output JSON")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sdkstore config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after merging flags, SDKSTORE_* variables,")
	fmt.Fprintln(w, "the config file and defaults.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sdkstore doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that internal storage is writable, report external storage,")
	fmt.Fprintln(w, "and verify the trust certificate can be copied and parsed.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                 Output JSON")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "cert":
		printCertUsage(env.Stdout)
	case "materialize":
		printMaterializeUsage(env.Stdout)
	case "paths":
		printPathsUsage(env.Stdout)
	case "assets":
		printAssetsUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: sdkstore version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: sdkstore help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}

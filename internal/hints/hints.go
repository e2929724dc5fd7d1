// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	sep := string(filepath.Separator)
	marker := sep + "go-sdkstore" + sep
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForDirectoryCreate returns hints for storage directory creation errors.
func ForDirectoryCreate(root string) string {
	if root == "" {
		return format("check the storage root exists and is writable")
	}
	return format("check " + root + " exists and is writable, or set --internal-root")
}

// ForAssetNotFound lists the bundled assets when a lookup fails.
func ForAssetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("bundled assets: " + strings.Join(available, ", "))
}

// ForExternalUnavailable explains the silent fallback to internal storage.
func ForExternalUnavailable() string {
	return format("external storage is not mounted; internal storage is used instead")
}

// ForCertificate returns hints for trust certificate load failures.
func ForCertificate(path string) string {
	var hints []string
	if path != "" {
		hints = append(hints, "remove "+path+" to force a fresh copy")
	}
	hints = append(hints, "run 'sdkstore doctor' for details")
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

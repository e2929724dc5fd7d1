//go:build !android

package sdkstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// HostRoots returns the desktop storage roots for app: internal storage under
// the user config directory. Desktop hosts have no removable app storage, so
// external is always empty; configure one explicitly when needed.
func HostRoots(app string) (internal, external string, err error) {
	if app == "" {
		return "", "", fmt.Errorf("%w: empty app name", ErrInvalidRoot)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	return filepath.Join(dir, app), "", nil
}

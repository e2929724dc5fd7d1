//go:build android

package sdkstore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// HostRoots returns the Android app storage roots for the package app.
// An empty app is read from /proc/self/cmdline. Internal storage is
// /data/data/{pkg}/files; external storage is
// $EXTERNAL_STORAGE/Android/data/{pkg}/files when EXTERNAL_STORAGE is set.
func HostRoots(app string) (internal, external string, err error) {
	pkg := app
	if pkg == "" {
		pkg, err = packageName()
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
		}
	}

	internal = filepath.Join("/data/data", pkg, "files")
	if shared := os.Getenv("EXTERNAL_STORAGE"); shared != "" {
		external = filepath.Join(shared, "Android", "data", pkg, "files")
	}
	return internal, external, nil
}

// packageName reads the process name, which Android sets to the package.
func packageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	// cmdline is NUL-separated; the first element is the process name.
	name, _, _ := bytes.Cut(data, []byte{0})
	pkg := string(bytes.TrimSpace(name))
	if pkg == "" {
		return "", fmt.Errorf("empty process name in /proc/self/cmdline")
	}
	return pkg, nil
}

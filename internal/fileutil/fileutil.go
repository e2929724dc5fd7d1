// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath   = errors.New("path cannot be empty")
	ErrNotDir      = errors.New("path exists but is not a directory")
	ErrNotWritable = errors.New("directory is not writable")
)

// DirPerm is the permission used for directories created on behalf of the SDK.
const DirPerm = 0o755

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDir creates path and any missing ancestors.
// An existing non-directory at path is reported as ErrNotDir.
func EnsureDir(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := os.MkdirAll(path, DirPerm); err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) && FileExists(pathErr.Path) {
			return fmt.Errorf("%w: %s", ErrNotDir, pathErr.Path)
		}
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// CheckWritable verifies a file can be created inside dir.
// The probe file is removed before returning.
func CheckWritable(dir string) error {
	if dir == "" {
		return ErrEmptyPath
	}

	probe, err := os.CreateTemp(dir, ".sdkstore-probe-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotWritable, dir, err)
	}
	path := probe.Name()

	if closeErr := probe.Close(); closeErr != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: %s: %v", ErrNotWritable, dir, closeErr)
	}
	return os.Remove(path)
}

// WithTrailingSeparator returns path ending in exactly one separator.
func WithTrailingSeparator(path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimRight(path, string(filepath.Separator)) + string(filepath.Separator)
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "sdkstore" -> false (name)
//   - "./sdkstore.yaml" -> true (relative path)
//   - "/etc/sdkstore.yaml" -> true (absolute)
//   - "C:\config\sdkstore.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

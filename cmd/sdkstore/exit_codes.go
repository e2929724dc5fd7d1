package main

import (
	"errors"
	"os"

	"github.com/alnah/go-sdkstore"
	"github.com/alnah/go-sdkstore/internal/config"
)

// Exit codes for the sdkstore CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or asset name
	ExitIO      = 3 // Directory creation, copy, or certificate failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, sdkstore.ErrAssetNotFound) ||
		errors.Is(err, sdkstore.ErrInvalidAssetName) ||
		errors.Is(err, sdkstore.ErrInvalidAssetPath) ||
		errors.Is(err, sdkstore.ErrInvalidRoot) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, sdkstore.ErrDirectoryCreate) ||
		errors.Is(err, sdkstore.ErrCopyIO) ||
		errors.Is(err, sdkstore.ErrCertificateMissing) ||
		errors.Is(err, sdkstore.ErrCertificateParse) {
		return ExitIO
	}

	return ExitGeneral
}

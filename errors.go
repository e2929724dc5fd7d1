package sdkstore

import "errors"

// Sentinel errors for library operations.
var (
	ErrDirectoryCreate = errors.New("failed to create asset directory")
	ErrAssetNotFound   = errors.New("asset not found")
	ErrCopyIO          = errors.New("failed to copy asset")

	// ErrExternalStorageUnavailable marks the recoverable fallback from
	// external to internal storage. It is logged, never returned.
	ErrExternalStorageUnavailable = errors.New("external storage unavailable")

	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrInvalidRoot      = errors.New("invalid storage root")

	// Trust material errors.
	ErrCertificateMissing = errors.New("certificate file not found")
	ErrCertificateParse   = errors.New("no certificates could be parsed")
)

package sdkstore

import (
	"errors"
	"io"

	"github.com/alnah/go-sdkstore/internal/assets"
)

// AssetSource opens bundled read-only resources by name.
// Implementations may read from embedded assets, a directory, an archive, etc.
type AssetSource interface {
	// Open returns a stream over the named resource. The caller must close it.
	// Returns ErrAssetNotFound if the bundle lacks the resource.
	Open(name string) (io.ReadCloser, error)
}

// NewAssetSource creates an AssetSource for the given base path.
// If basePath is empty, returns a source using only the embedded bundle.
// If basePath is set, files there take precedence with fallback to the bundle.
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetSource(basePath string) (AssetSource, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetSourceAdapter{resolver: resolver}, nil
}

// BundledAssets lists the resource names compiled into the binary.
func BundledAssets() []string {
	return assets.Names()
}

// assetSourceAdapter wraps the internal resolver to return public errors.
type assetSourceAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetSourceAdapter) Open(name string) (io.ReadCloser, error) {
	rc, err := a.resolver.Open(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return rc, nil
}

// validateAssetName applies the bundle naming rules with public errors.
func validateAssetName(name string) error {
	return convertAssetError(assets.ValidateAssetName(name))
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrAssetNotFound):
		return wrapError(ErrAssetNotFound, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrInvalidAssetName, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrAssetRead):
		return wrapError(ErrCopyIO, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}

package assets

import (
	"errors"
	"io"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the asset is not found in the custom location.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// If customBasePath is set, custom assets take precedence with fallback to embedded.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// Open streams an asset, trying the custom loader first if available.
// Only "not found" falls through to the embedded bundle; validation,
// traversal and I/O errors are returned as is.
func (r *AssetResolver) Open(name string) (io.ReadCloser, error) {
	if r.custom == nil {
		return r.embedded.Open(name)
	}

	rc, err := r.custom.Open(name)
	if err == nil {
		return rc, nil
	}
	if !errors.Is(err, ErrAssetNotFound) {
		return nil, err
	}

	return r.embedded.Open(name)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)

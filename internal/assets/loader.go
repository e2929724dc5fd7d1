package assets

import "io"

// AssetLoader defines the contract for opening bundled resources.
// Implementations may read from embedded assets, a directory, an archive, etc.
type AssetLoader interface {
	// Open returns a stream over the named resource. The caller must close it.
	// Returns ErrAssetNotFound if the resource doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	Open(name string) (io.ReadCloser, error)
}

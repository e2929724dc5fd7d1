package assets

import "io"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// Open streams a bundled resource by name using the default embedded loader.
// Returns ErrAssetNotFound if the resource does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func Open(name string) (io.ReadCloser, error) {
	return defaultLoader.Open(name)
}

// Names lists the resources available in the embedded bundle.
func Names() []string {
	return defaultLoader.Names()
}

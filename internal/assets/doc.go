// Package assets provides read access to the resources bundled with the SDK,
// such as the trust certificate copied into app storage on first use.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - streams from the go:embed bundle
//	    ├── FilesystemLoader  - streams from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the resources compiled into the binary under
// bundle/. FilesystemLoader lets a host ship a replacement bundle directory,
// with path traversal protection and symlink resolution. AssetResolver tries
// the custom directory first and falls back to the embedded bundle when the
// asset is not found there.
//
// # Compressed Entries
//
// A bundle entry may be stored as {name}.gz. Both loaders look for the plain
// name first and otherwise open the compressed entry, decompressing while the
// caller reads. Callers never see the .gz suffix.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets

package assets

import (
	"embed"
	"io"
	"io/fs"
	"slices"
)

//go:embed bundle/*
var bundle embed.FS

// bundleDir is the embedded directory holding the bundled resources.
const bundleDir = "bundle"

// EmbeddedLoader opens resources compiled into the binary.
// Implements AssetLoader interface.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader over the built-in bundle.
func NewEmbeddedLoader() *EmbeddedLoader {
	sub, err := fs.Sub(bundle, bundleDir)
	if err != nil {
		// bundleDir is a constant that always exists in the embed.
		panic("assets: embedded bundle missing: " + err.Error())
	}
	return &EmbeddedLoader{fsys: sub}
}

// Open streams a bundled resource by name.
func (e *EmbeddedLoader) Open(name string) (io.ReadCloser, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	return openEntry(e.fsys, name)
}

// Names lists the bundled resource names, sorted, without compression suffixes.
func (e *EmbeddedLoader) Names() []string {
	entries, err := fs.ReadDir(e.fsys, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entryName(entry.Name())
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)

package sdkstore

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-sdkstore/internal/fileutil"
)

// PathProvider exposes the host's storage roots.
type PathProvider interface {
	// InternalRoot returns the app-private directory. It always succeeds.
	InternalRoot() string
	// ExternalRoot returns the shared or removable directory, or false when
	// external storage is not available right now.
	ExternalRoot() (string, bool)
}

// StaticPaths is a PathProvider over fixed values.
// An empty External reports external storage as absent.
type StaticPaths struct {
	Internal string
	External string
}

// InternalRoot returns p.Internal.
func (p StaticPaths) InternalRoot() string { return p.Internal }

// ExternalRoot returns p.External when it is set.
func (p StaticPaths) ExternalRoot() (string, bool) { return p.External, p.External != "" }

// DirPaths is a PathProvider backed by real directories. The external root
// is only reported while it exists as a directory, so unmounting it between
// calls turns later lookups into the internal fallback.
type DirPaths struct {
	internal string
	external string
}

// NewDirPaths validates and prepares the given roots. The internal root must
// be absolute and is created if missing. The external root may be empty; if
// set it must be absolute but need not exist yet.
func NewDirPaths(internal, external string) (*DirPaths, error) {
	if internal == "" {
		return nil, fmt.Errorf("%w: empty internal root", ErrInvalidRoot)
	}
	if !filepath.IsAbs(internal) {
		return nil, fmt.Errorf("%w: internal root %q is not absolute", ErrInvalidRoot, internal)
	}
	if external != "" && !filepath.IsAbs(external) {
		return nil, fmt.Errorf("%w: external root %q is not absolute", ErrInvalidRoot, external)
	}
	if err := fileutil.EnsureDir(internal); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	return &DirPaths{
		internal: filepath.Clean(internal),
		external: cleanOptional(external),
	}, nil
}

// HostPaths returns a DirPaths over the platform's default roots for app.
// See HostRoots for the locations used.
func HostPaths(app string) (*DirPaths, error) {
	internal, external, err := HostRoots(app)
	if err != nil {
		return nil, err
	}
	return NewDirPaths(internal, external)
}

// InternalRoot returns the internal directory.
func (p *DirPaths) InternalRoot() string { return p.internal }

// ExternalRoot returns the external directory if it currently exists.
func (p *DirPaths) ExternalRoot() (string, bool) {
	if p.external == "" || !fileutil.DirExists(p.external) {
		return "", false
	}
	return p.external, true
}

func cleanOptional(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// Compile-time interface checks.
var (
	_ PathProvider = StaticPaths{}
	_ PathProvider = (*DirPaths)(nil)
)

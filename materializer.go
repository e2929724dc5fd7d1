package sdkstore

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alnah/go-sdkstore/internal/fileutil"
	"github.com/alnah/go-sdkstore/internal/logging"
)

// Materializer places bundled assets onto durable storage exactly once and
// reports where they live.
//
// A Materializer holds no mutable state; the filesystem is the only shared
// resource, so concurrent use is safe.
type Materializer struct {
	paths       PathProvider
	source      AssetSource
	log         *slog.Logger
	bufSize     int
	useExternal bool
	certAsset   string
	certDir     string

	// create opens the destination file. Replaced in tests.
	create func(name string) (io.WriteCloser, error)
}

// New creates a Materializer over the host's roots and asset bundle.
// A nil source uses the embedded bundle. Panics if paths is nil.
func New(paths PathProvider, source AssetSource, opts ...Option) *Materializer {
	if paths == nil {
		panic("sdkstore: New requires a PathProvider")
	}
	if source == nil {
		// The embedded-only source cannot fail to build.
		source, _ = NewAssetSource("")
	}

	m := &Materializer{
		paths:       paths,
		source:      source,
		log:         logging.Discard(),
		bufSize:     DefaultBufferSize,
		useExternal: true,
		certAsset:   CertificateAsset,
		certDir:     CertificateDir,
		create:      createExclusive,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ResolveStorageRoot returns the internal root, or the external root when
// preferExternal is set and external storage is available. Missing external
// storage is an expected condition and falls back to internal silently.
func (m *Materializer) ResolveStorageRoot(preferExternal bool) StorageRoot {
	internal := StorageRoot{Kind: Internal, Path: m.paths.InternalRoot()}
	if !preferExternal {
		return internal
	}

	if ext, ok := m.paths.ExternalRoot(); ok && ext != "" {
		return StorageRoot{Kind: External, Path: ext}
	}

	m.log.Debug("using internal storage",
		slog.String("path", internal.Path),
		slog.Any("reason", ErrExternalStorageUnavailable))
	return internal
}

// Materialize copies the bundled asset into targetDir unless
// targetDir/asset already exists, and returns the file's absolute path.
//
// An existing file is never overwritten or re-copied. On failure the error
// is logged and returned together with the path that was being written, so
// callers that only want a best-effort hint can ignore the error; anything
// security-sensitive should check the file first (see TrustPool).
//
// Errors: ErrInvalidAssetName, ErrInvalidRoot, ErrDirectoryCreate,
// ErrAssetNotFound, ErrCopyIO.
func (m *Materializer) Materialize(asset, targetDir string) (string, error) {
	if err := validateAssetName(asset); err != nil {
		m.log.Error("invalid asset name", slog.String("asset", asset), slog.Any("err", err))
		return "", err
	}
	if targetDir == "" {
		err := fmt.Errorf("%w: empty target directory", ErrInvalidRoot)
		m.log.Error("invalid target directory", slog.String("asset", asset), slog.Any("err", err))
		return "", err
	}

	outFile := filepath.Join(targetDir, asset)
	if abs, err := filepath.Abs(outFile); err == nil {
		outFile = abs
	}

	if err := fileutil.EnsureDir(targetDir); err != nil {
		err = fmt.Errorf("%w: %v", ErrDirectoryCreate, err)
		m.log.Error("creating asset directory",
			slog.String("dir", targetDir),
			slog.Any("err", err))
		return outFile, err
	}

	if _, err := os.Stat(outFile); err == nil {
		m.log.Info("asset already exists", slog.String("path", outFile))
		return outFile, nil
	}

	if err := m.copyAsset(asset, outFile); err != nil {
		if errors.Is(err, errDestinationExists) {
			m.log.Info("asset already exists", slog.String("path", outFile))
			return outFile, nil
		}
		m.log.Error("failed copying asset",
			slog.String("asset", asset),
			slog.String("path", outFile),
			slog.Any("err", err))
		return outFile, err
	}

	m.log.Info("copied asset", slog.String("asset", asset), slog.String("path", outFile))
	return outFile, nil
}

// CertificatePath materializes the bundled trust certificate under
// {internal}/Certificates and returns its path. Certificates always live on
// internal storage, whatever the external storage preference.
func (m *Materializer) CertificatePath() (string, error) {
	root := m.ResolveStorageRoot(false)
	return m.Materialize(m.certAsset, filepath.Join(root.Path, m.certDir))
}

// InternalStorageDirectory returns the internal root with a trailing separator.
func (m *Materializer) InternalStorageDirectory() string {
	return fileutil.WithTrailingSeparator(m.paths.InternalRoot())
}

// ExternalStorageDirectory returns the directory for mod storage with a
// trailing separator: the external root when the host prefers it and it is
// available, the internal root otherwise.
func (m *Materializer) ExternalStorageDirectory() string {
	return fileutil.WithTrailingSeparator(m.ResolveStorageRoot(m.useExternal).Path)
}

package sdkstore

import (
	"log/slog"

	"github.com/alnah/go-sdkstore/internal/logging"
)

// StorageKind tags a storage root.
type StorageKind int

const (
	// Internal is the sandboxed, always-present app-private directory.
	Internal StorageKind = iota
	// External is optional shared or removable storage.
	External
)

// String returns "internal" or "external".
func (k StorageKind) String() string {
	if k == External {
		return "external"
	}
	return "internal"
}

// StorageRoot is an absolute directory path tagged with its kind.
type StorageRoot struct {
	Kind StorageKind
	Path string
}

// Certificate placement under the internal root.
const (
	CertificateAsset = "modio.crt"
	CertificateDir   = "Certificates"
)

// DefaultBufferSize is the length of the intermediate copy buffer.
const DefaultBufferSize = 1024

// Option configures a Materializer.
type Option func(*Materializer)

// WithLogger sets the diagnostic channel. A nil logger discards records.
func WithLogger(l *slog.Logger) Option {
	return func(m *Materializer) {
		if l == nil {
			l = logging.Discard()
		}
		m.log = l
	}
}

// WithBufferSize sets the copy buffer length.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithBufferSize(n int) Option {
	if n <= 0 {
		panic("sdkstore: WithBufferSize size must be positive")
	}
	return func(m *Materializer) {
		m.bufSize = n
	}
}

// WithExternalStorage records the host preference for keeping mods on
// external storage. It only affects ExternalStorageDirectory.
func WithExternalStorage(use bool) Option {
	return func(m *Materializer) {
		m.useExternal = use
	}
}

// WithCertificate overrides the certificate asset name and its directory
// under the internal root. Empty values keep the defaults.
func WithCertificate(asset, dir string) Option {
	return func(m *Materializer) {
		if asset != "" {
			m.certAsset = asset
		}
		if dir != "" {
			m.certDir = dir
		}
	}
}

package sdkstore

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"

	"github.com/alnah/go-sdkstore/internal/fileutil"
)

// TrustPool materializes the bundled certificate and loads it as a pool of
// trusted roots. Unlike CertificatePath it fails unless the file exists and
// holds at least one parseable certificate.
func (m *Materializer) TrustPool() (*x509.CertPool, error) {
	path, err := m.CertificatePath()
	if err != nil && !fileutil.FileExists(path) {
		return nil, err
	}

	pool, count, err := loadCertPool(path)
	if err != nil {
		m.log.Error("could not load root certificates", slog.String("path", path), slog.Any("err", err))
		return nil, err
	}
	m.log.Debug("loaded root certificates", slog.String("path", path), slog.Int("count", count))
	return pool, nil
}

// TLSConfig returns a client TLS configuration trusting only the bundled
// certificate.
func (m *Materializer) TLSConfig() (*tls.Config, error) {
	pool, err := m.TrustPool()
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}, nil
}

// LoadCertPool reads every PEM certificate in path into a new pool.
// Returns ErrCertificateMissing if path is not a regular file and
// ErrCertificateParse if no certificate in it parses.
func LoadCertPool(path string) (*x509.CertPool, error) {
	pool, _, err := loadCertPool(path)
	return pool, err
}

func loadCertPool(path string) (*x509.CertPool, int, error) {
	if path == "" || !fileutil.FileExists(path) {
		return nil, 0, fmt.Errorf("%w: %s", ErrCertificateMissing, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path produced by Materialize or the caller
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrCertificateMissing, path, err)
	}

	pool := x509.NewCertPool()
	count := 0
	for len(data) > 0 {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" || len(block.Headers) != 0 {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}
		pool.AddCert(cert)
		count++
	}

	if count == 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrCertificateParse, path)
	}
	return pool, count, nil
}

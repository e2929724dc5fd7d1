package main

import (
	"errors"

	"github.com/alnah/go-sdkstore"
	"github.com/alnah/go-sdkstore/internal/hints"
)

// hintedError carries a hint computed where the context was known.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() }
func (e *hintedError) Unwrap() error { return e.err }

// withHint attaches hint to err. An empty hint returns err unchanged.
func withHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return &hintedError{err: err, hint: hint}
}

// hintFor returns the hint to print after err, or "".
func hintFor(err error) string {
	var h *hintedError
	if errors.As(err, &h) {
		return h.hint
	}

	switch {
	case errors.Is(err, sdkstore.ErrAssetNotFound):
		return hints.ForAssetNotFound(sdkstore.BundledAssets())
	case errors.Is(err, sdkstore.ErrDirectoryCreate):
		return hints.ForDirectoryCreate("")
	case errors.Is(err, sdkstore.ErrCertificateMissing), errors.Is(err, sdkstore.ErrCertificateParse):
		return hints.ForCertificate("")
	}
	return ""
}

package sdkstore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

// filePerm is used for materialized assets. Bundled assets are public.
const filePerm = 0o644

// errDestinationExists reports that another writer created the file first.
var errDestinationExists = errors.New("destination already exists")

// createExclusive creates name, failing if it already exists.
func createExclusive(name string) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm) // #nosec G302 G304 -- public asset, path built from validated name
}

// copyAsset streams asset into a newly created outFile with a fixed-size
// buffer. Both streams are closed on every path; a partially written file is
// removed so a later call copies again.
func (m *Materializer) copyAsset(asset, outFile string) error {
	src, err := m.source.Open(asset)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) || errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q: %v", ErrAssetNotFound, asset, err)
		}
		return fmt.Errorf("%w: opening %q: %v", ErrCopyIO, asset, err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			m.log.Warn("closing asset stream", slog.String("asset", asset), slog.Any("err", cerr))
		}
	}()

	dst, err := m.create(outFile)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errDestinationExists
		}
		return fmt.Errorf("%w: creating %s: %v", ErrCopyIO, outFile, err)
	}

	buf := make([]byte, m.bufSize)
	// The wrappers hide ReaderFrom/WriterTo so every byte goes through buf.
	_, copyErr := io.CopyBuffer(writerOnly{dst}, readerOnly{src}, buf)
	closeErr := dst.Close()
	if copyErr == nil && closeErr == nil {
		return nil
	}

	if rmErr := os.Remove(outFile); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		m.log.Warn("removing partial asset", slog.String("path", outFile), slog.Any("err", rmErr))
	}
	if copyErr != nil {
		return fmt.Errorf("%w: copying %q: %v", ErrCopyIO, asset, copyErr)
	}
	return fmt.Errorf("%w: closing %s: %v", ErrCopyIO, outFile, closeErr)
}

type readerOnly struct{ r io.Reader }

func (r readerOnly) Read(p []byte) (int, error) { return r.r.Read(p) }

type writerOnly struct{ w io.Writer }

func (w writerOnly) Write(p []byte) (int, error) { return w.w.Write(p) }

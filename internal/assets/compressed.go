package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// compressedSuffix marks a bundle entry stored gzip-compressed.
const compressedSuffix = ".gz"

// openEntry opens name from fsys, trying the plain entry first and then the
// compressed one. Directories are reported as not found.
func openEntry(fsys fs.FS, name string) (io.ReadCloser, error) {
	f, err := openRegular(fsys, name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	cf, err := openRegular(fsys, name+compressedSuffix)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	zr, err := gzip.NewReader(cf)
	if err != nil {
		_ = cf.Close()
		return nil, fmt.Errorf("%w: %s%s: %v", ErrAssetRead, name, compressedSuffix, err)
	}
	return &gzipReadCloser{zr: zr, file: cf}, nil
}

// openRegular opens name and rejects anything that is not a regular file.
func openRegular(fsys fs.FS, name string) (fs.File, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}

// entryName strips the compressed suffix from a bundle directory entry.
func entryName(name string) string {
	return strings.TrimSuffix(name, compressedSuffix)
}

// gzipReadCloser closes both the decompressor and the underlying file.
type gzipReadCloser struct {
	zr   *gzip.Reader
	file io.Closer
}

func (g *gzipReadCloser) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzipReadCloser) Close() error {
	return errors.Join(g.zr.Close(), g.file.Close())
}

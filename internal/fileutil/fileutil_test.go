package fileutil_test

// Notes:
// - CheckWritable on a read-only directory is skipped when running as root,
//   since root ignores directory permission bits.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alnah/go-sdkstore/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "modio.crt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing path", path: filepath.Join(dir, "missing"), want: false},
		{name: "empty path", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDirExists - Directory detection
// ---------------------------------------------------------------------------

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if !fileutil.DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if fileutil.DirExists(file) {
		t.Errorf("DirExists(%q) = true, want false", file)
	}
	if fileutil.DirExists(filepath.Join(dir, "missing")) {
		t.Error("DirExists(missing) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestEnsureDir - Directory creation with ancestors
// ---------------------------------------------------------------------------

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	t.Run("creates missing ancestors", func(t *testing.T) {
		t.Parallel()

		target := filepath.Join(t.TempDir(), "a", "b", "c")
		if err := fileutil.EnsureDir(target); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}
		if !fileutil.DirExists(target) {
			t.Errorf("EnsureDir() did not create %s", target)
		}
	})

	t.Run("existing directory is a no-op", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fileutil.EnsureDir(dir); err != nil {
			t.Errorf("EnsureDir() error = %v", err)
		}
	})

	t.Run("empty path returns ErrEmptyPath", func(t *testing.T) {
		t.Parallel()

		if err := fileutil.EnsureDir(""); !errors.Is(err, fileutil.ErrEmptyPath) {
			t.Errorf("EnsureDir(\"\") error = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("file in the way returns ErrNotDir", func(t *testing.T) {
		t.Parallel()

		blocker := filepath.Join(t.TempDir(), "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		err := fileutil.EnsureDir(filepath.Join(blocker, "child"))
		if !errors.Is(err, fileutil.ErrNotDir) {
			t.Errorf("EnsureDir() error = %v, want ErrNotDir", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestCheckWritable - Write probe
// ---------------------------------------------------------------------------

func TestCheckWritable(t *testing.T) {
	t.Parallel()

	t.Run("writable directory leaves no probe behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fileutil.CheckWritable(dir); err != nil {
			t.Fatalf("CheckWritable() error = %v", err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("CheckWritable() left %d entries behind", len(entries))
		}
	})

	t.Run("missing directory returns ErrNotWritable", func(t *testing.T) {
		t.Parallel()

		err := fileutil.CheckWritable(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, fileutil.ErrNotWritable) {
			t.Errorf("CheckWritable() error = %v, want ErrNotWritable", err)
		}
	})

	t.Run("read-only directory returns ErrNotWritable", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("directory permissions not enforced")
		}

		dir := t.TempDir()
		if err := os.Chmod(dir, 0o555); err != nil {
			t.Fatalf("Chmod() error = %v", err)
		}
		t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

		if err := fileutil.CheckWritable(dir); !errors.Is(err, fileutil.ErrNotWritable) {
			t.Errorf("CheckWritable() error = %v, want ErrNotWritable", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWithTrailingSeparator - Directory string formatting
// ---------------------------------------------------------------------------

func TestWithTrailingSeparator(t *testing.T) {
	t.Parallel()

	sep := string(filepath.Separator)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "adds separator", in: sep + "data", want: sep + "data" + sep},
		{name: "keeps single separator", in: sep + "data" + sep, want: sep + "data" + sep},
		{name: "collapses repeated separators", in: sep + "data" + sep + sep, want: sep + "data" + sep},
		{name: "empty stays empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.WithTrailingSeparator(tt.in); got != tt.want {
				t.Errorf("WithTrailingSeparator(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"sdkstore", false},
		{"my-config", false},
		{"./sdkstore.yaml", true},
		{"../shared/sdkstore.yaml", true},
		{"/etc/sdkstore.yaml", true},
		{"C:\\config\\sdkstore.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

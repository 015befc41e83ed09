package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// AbsFilePath calls filepath.Abs on path.
func AbsFilePath(t *testing.T, path string) string {
	t.Helper()

	s, err := filepath.Abs(path)
	if err != nil {
		t.Fatal(err)
	}

	return s
}

// WriteFiles creates each file of files, keyed by path, with its content.
// Parent directories are created as needed.
func WriteFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()

	for path, content := range files {
		if err := fs.MkdirAll(filepath.Dir(path), 0o777); err != nil {
			t.Fatal(err)
		}

		if err := afero.WriteFile(fs, path, []byte(content), 0o666); err != nil {
			t.Fatal(err)
		}
	}
}

// ReadFile returns the content of path, failing the test if it cannot be read.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatal(err)
	}

	return string(b)
}

// Exists reports whether path exists.
func Exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()

	ok, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatal(err)
	}

	return ok
}

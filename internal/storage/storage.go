// Package storage provides idempotent directory creation and atomic file
// writes for generated documents.
package storage

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents. It succeeds when dir
// already exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// WriteFile atomically writes data to path.
func WriteFile(path string, data []byte) error {
	return WriteWith(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// WriteWith streams the output of write to path atomically.
// It ensures the parent directory exists, writes to a hidden temp file in
// the same directory, then renames it over path. An existing file at path
// is replaced; other files in the directory are never touched.
func WriteWith(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, ".docbatch-*")
	if err != nil {
		return err
	}
	tempPath := f.Name()

	fail := func(err error) error {
		f.Close()
		os.Remove(tempPath)
		return err
	}

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := f.Chmod(0o644); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}

// Touch creates an empty file at path, truncating any existing content.
func Touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

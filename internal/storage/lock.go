package storage

import (
	"os"
	"path/filepath"
)

// FileLock is an exclusive advisory lock held on a separate lock file.
// It serializes read-modify-write cycles of small state files between
// concurrent docbatch processes.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a lock backed by the file at path. The file is
// created on Lock if it does not exist.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path}
}

// Lock blocks until the lock is acquired.
func (l *FileLock) Lock() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return err
	}
	l.file = f
	return nil
}

// Unlock releases the lock. Unlocking an unheld lock is a no-op.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	if err := unlockFile(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WithLock runs fn while holding a lock on path+".lock".
func WithLock(path string, fn func() error) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	lock := NewFileLock(path + ".lock")
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()
	return fn()
}

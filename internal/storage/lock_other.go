//go:build !unix

package storage

import "os"

// Without flock the lock file only marks intent.
func lockFile(*os.File) error   { return nil }
func unlockFile(*os.File) error { return nil }

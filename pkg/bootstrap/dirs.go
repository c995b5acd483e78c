package bootstrap

import (
	"errors"
	"os"
)

var errNotADirectory = errors.New("not a directory")

// EnsureDir guarantees that path exists as a writable directory.
//
// A missing directory is created recursively. An existing directory that the
// current identity cannot write to is a fatal FilesystemError; the probe
// creates and removes a temp file rather than trusting permission bits,
// which keeps the check honest under ACLs and read-only mounts. Idempotent.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		if mkErr := os.MkdirAll(path, 0o755); mkErr != nil {
			return &FilesystemError{Op: "create", Path: path, Err: mkErr}
		}
		return nil
	case err != nil:
		return &FilesystemError{Op: "stat", Path: path, Err: err}
	case !info.IsDir():
		return &FilesystemError{Op: "ensure", Path: path, Err: errNotADirectory}
	}

	f, err := os.CreateTemp(path, ".writecheck-*")
	if err != nil {
		return &FilesystemError{Op: "write", Path: path, Err: err}
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}

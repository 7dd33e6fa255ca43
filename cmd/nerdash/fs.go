package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nerdash/nerdash/internal/testable"
)

// cmdFS is the file system implementation used by CLI commands.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS

// writeAtomic replaces path with data. The bytes go to a temporary file in
// the same directory, which is renamed over path only after a complete
// write, so a failure leaves the previous file intact.
func writeAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := cmdFS.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = cmdFS.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := cmdFS.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}
	if err := cmdFS.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// existingMode returns the permission bits of path, or def when path does
// not exist yet.
func existingMode(path string, def os.FileMode) os.FileMode {
	info, err := cmdFS.Stat(path)
	if err != nil {
		return def
	}
	return info.Mode().Perm()
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPerm     os.FileMode = 0o700
	privatePerm os.FileMode = 0o600
)

// readDocument returns the file content and false when the file does not
// exist. An existing empty file is reported as absent too.
func readDocument(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w %s: %w", ErrReadingFile, path, err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

// writeFileAtomic writes data to a temporary file in the target directory
// and renames it over path, so readers see either the old or the new
// content and never a truncated file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrWritingFile, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %w", ErrWritingFile, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %w", ErrWritingFile, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("%w: chmod: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", ErrWritingFile, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename: %w", ErrWritingFile, err)
	}

	return nil
}

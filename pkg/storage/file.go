package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend implements Backend with one file per key under a base
// directory. All paths are confined to the base directory: keys containing
// path separators are rejected.
type FileBackend struct {
	baseDir string // absolute path, created on construction
}

// NewFileBackend creates a file-based backend rooted at baseDir. The
// directory is resolved to an absolute path and created if it does not exist.
func NewFileBackend(baseDir string) (*FileBackend, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, errors.Join(ErrFailedToCreateDirectory, err)
	}

	return &FileBackend{baseDir: absBaseDir}, nil
}

func (f *FileBackend) Read(ctx context.Context, key string) (string, bool, error) {
	path, err := f.recordPath(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.Join(ErrFailedToReadRecord, err)
	}

	return string(data), true, nil
}

// Write stores the record through a temp file and rename so that readers
// never observe a half-written record.
func (f *FileBackend) Write(ctx context.Context, key, value string) error {
	path, err := f.recordPath(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.baseDir, key+".tmp-*")
	if err != nil {
		return errors.Join(ErrFailedToWriteRecord, err)
	}

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errors.Join(ErrFailedToWriteRecord, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Join(ErrFailedToWriteRecord, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Join(ErrFailedToWriteRecord, err)
	}

	return nil
}

func (f *FileBackend) Delete(ctx context.Context, key string) error {
	path, err := f.recordPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Join(ErrFailedToDeleteRecord, err)
	}

	return nil
}

func (f *FileBackend) Exists(ctx context.Context, key string) (bool, error) {
	path, err := f.recordPath(key)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Join(ErrFailedToStatRecord, err)
	}

	return true, nil
}

// recordPath maps a key to its file, rejecting keys that could escape the
// base directory.
func (f *FileBackend) recordPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", ErrInvalidKey
	}
	return filepath.Join(f.baseDir, key+".json"), nil
}

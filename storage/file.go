package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is a Backend storing each key as a JSON file in a data directory.
type File struct {
	dir string
}

// NewFile creates a file backend rooted at dir. The directory is created on
// the first write, not here, so a read-only run never touches the disk.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get reads the value stored under key.
func (f *File) Get(key string) ([]byte, error) {
	value, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", key, ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", f.path(key), err)
	}
	return value, nil
}

// Set writes value under key, creating the data directory if needed.
func (f *File) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", f.dir, err)
	}
	if err := os.WriteFile(f.path(key), value, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", f.path(key), err)
	}
	return nil
}

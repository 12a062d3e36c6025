// Package ioutils provides file system utilities for bemani-autotag.
//
// This package contains functions for:
//   - File writing with overwrite semantics
//   - Optional file reading
//   - Directory checks and listings that follow symlinks
package ioutils

import (
	"context"
	"os"
	"path/filepath"
)

// Entry is one child of a listed directory.
type Entry struct {
	// Name is the base name of the child.
	Name string

	// IsDir reports whether the child is, or links to, a directory.
	IsDir bool
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	err := WriteFile(ctx, "/rips/Foo/Foo.m3u8", []byte("intro.sd9\n"))
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// ReadFileIfExists reads the file at path.
//
// A missing file is not an error: it returns nil data and found == false.
// Any other failure, including path being a directory, is returned.
func ReadFileIfExists(path string) (data []byte, found bool, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// IsDir reports whether path exists and is a directory, following symlinks.
func IsDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListDir returns the immediate children of dir sorted by name.
//
// Unlike os.ReadDir, IsDir follows symlinks. A child whose target cannot
// be resolved is reported as a non-directory.
func ListDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			isDir = IsDir(filepath.Join(dir, de.Name()))
		}
		entries = append(entries, Entry{Name: de.Name(), IsDir: isDir})
	}

	return entries, nil
}

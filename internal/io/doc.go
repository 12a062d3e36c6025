// Package ioutils provides file system utilities.
//
// This package contains functions for:
//   - Writing files with whole-file overwrite semantics
//   - Reading optional files without treating absence as an error
//   - Checking and listing directories, following symlinks
//
// # File Operations
//
//	// Write data to file, replacing previous content
//	err := ioutils.WriteFile(ctx, "/rips/Foo/note.txt", []byte("Game: Foo\n"))
//
//	// Read a file that may not exist
//	data, found, err := ioutils.ReadFileIfExists("/rips/Foo/!tags.m3u")
//
// # Directories
//
//	if ioutils.IsDir("/rips/Foo") {
//	    entries, err := ioutils.ListDir("/rips/Foo")
//	}
package ioutils

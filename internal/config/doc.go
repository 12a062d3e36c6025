// Package config provides configuration management for bemani-autotag.
//
// This package handles:
//   - Loading and saving settings from TOML files
//   - Default configuration values
//   - Conversion to PathConfig and TagConfig for other packages
//
// # Default Settings
//
// The defaults reproduce the file layout players expect:
//
//	settings := config.DefaultSettings()
//	// Album artist and publisher "Konami"
//	// Sidecars named !tags.m3u, note.txt, <album>.m3u8
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/autotag.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// A file only needs the keys it changes:
//
//	album_artist = "Bemani Sound Team"
//	playlist_extension = ".m3u"
package config

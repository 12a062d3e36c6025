package model

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Album represents one library folder of game audio rips.
//
// All fields are derived from the folder's base name, which is expected to
// look like "Game Title (2003-05-01)". Given that name:
//   - Name is "Game Title"
//   - ReleaseDescriptor is "2003-05-01"
//   - Year is "2003"
//
// Paths are computed when creating an album via NewAlbum, using the
// file names configured in PathConfig.
//
// Example:
//
//	cfg := &PathConfig{NoteFileName: "note.txt", PlaylistExtension: ".m3u8", OverrideFileName: "!tags.m3u"}
//	album := NewAlbum("/rips/Game Title (2003-05-01)", cfg)
//	// album.PlaylistPath = "/rips/Game Title (2003-05-01)/Game Title.m3u8"
type Album struct {
	// Name is the album title: the folder name up to the first "(", trimmed.
	Name string

	// ReleaseDescriptor is the text inside the first parenthesis of the
	// folder name. Empty string means the album has no release descriptor.
	ReleaseDescriptor string

	// Year is the release descriptor up to its first "-".
	// Empty string means the year is unknown.
	Year string

	// FolderName is the base name of the library folder as found on disk.
	FolderName string

	// Tracks contains every track registered for the playlist.
	// Use AddTrack to register tracks so that order keys stay unique.
	Tracks []*Track

	// Path is the library folder path, without a trailing separator.
	Path string

	// OverridePath is where the optional track order override is read from.
	OverridePath string

	// NotePath is where the album note file is written.
	NotePath string

	// PlaylistPath is where the album playlist is written.
	PlaylistPath string
}

// PathConfig holds the file names used inside a library folder.
type PathConfig struct {
	// OverrideFileName is the track order override read from the folder root.
	OverrideFileName string

	// NoteFileName is the album note written to the folder root.
	NoteFileName string

	// PlaylistExtension is appended to the album name to form the playlist
	// file name, including the dot.
	PlaylistExtension string
}

// NewAlbum creates a new Album for the library folder at path.
//
// One trailing path separator is stripped from path before the folder name
// is parsed. The folder itself is not inspected.
func NewAlbum(path string, cfg *PathConfig) *Album {
	path = TrimTrailingSeparator(path)
	folderName := filepath.Base(path)
	name, descriptor, year := ParseAlbumFolderName(folderName)

	return &Album{
		Name:              name,
		ReleaseDescriptor: descriptor,
		Year:              year,
		FolderName:        folderName,
		Path:              path,
		OverridePath:      filepath.Join(path, cfg.OverrideFileName),
		NotePath:          filepath.Join(path, cfg.NoteFileName),
		PlaylistPath:      filepath.Join(path, name+cfg.PlaylistExtension),
	}
}

// ParseAlbumFolderName splits a library folder name into album name,
// release descriptor and year.
//
// Examples:
//
//	ParseAlbumFolderName("Foo Game (2003-05-01)") // "Foo Game", "2003-05-01", "2003"
//	ParseAlbumFolderName("Foo Game (2003)")       // "Foo Game", "2003", "2003"
//	ParseAlbumFolderName("Foo Game (Konami)")     // "Foo Game", "Konami", "Konami"
//	ParseAlbumFolderName("Foo Game")              // "Foo Game", "", ""
func ParseAlbumFolderName(folderName string) (name, descriptor, year string) {
	before, after, found := strings.Cut(folderName, "(")
	name = strings.TrimSpace(before)
	if !found {
		return name, "", ""
	}

	descriptor, _, _ = strings.Cut(after, ")")
	year, _, _ = strings.Cut(descriptor, "-")
	return name, descriptor, year
}

// TrimTrailingSeparator removes exactly one trailing path separator.
func TrimTrailingSeparator(path string) string {
	if path != "" && os.IsPathSeparator(path[len(path)-1]) {
		return path[:len(path)-1]
	}
	return path
}

// HasReleaseDescriptor reports whether the folder name carried a release descriptor.
func (a *Album) HasReleaseDescriptor() bool {
	return a.ReleaseDescriptor != ""
}

// HasYear reports whether a year could be derived from the release descriptor.
func (a *Album) HasYear() bool {
	return a.Year != ""
}

// GameName returns the folder name with every occurrence of removeToken cut
// out. The result is not trimmed.
func (a *Album) GameName(removeToken string) string {
	if removeToken == "" {
		return a.FolderName
	}
	return strings.ReplaceAll(a.FolderName, removeToken, "")
}

// AddTrack registers a track for the playlist. A track whose order key
// renders the same as an already registered track replaces it.
func (a *Album) AddTrack(track *Track) {
	key := track.Order.String()
	for i, existing := range a.Tracks {
		if existing.Order.String() == key {
			a.Tracks[i] = track
			return
		}
	}
	a.Tracks = append(a.Tracks, track)
}

// SortedTracks returns the registered tracks in playlist order.
func (a *Album) SortedTracks() []*Track {
	sorted := make([]*Track, len(a.Tracks))
	copy(sorted, a.Tracks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order.Less(sorted[j].Order)
	})
	return sorted
}

package audio

import (
	"strings"

	"github.com/handiism/bemani-autotag/internal/model"
)

// PlaylistCreator generates album playlists.
//
// The playlist is a plain M3U8 file: one path per line, relative to the
// library folder, in ascending order of each track's order key. No
// #EXTM3U header is written, so players fall back to the tags found in
// each track folder's sidecar.
//
// Example:
//
//	creator := NewPlaylistCreator()
//	content := creator.CreatePlaylist(album)
//	os.WriteFile(album.PlaylistPath, []byte(content), 0644)
//
//	// Result:
//	// opening.sd9
//	// Artist X - Song Y/05.1
//	// Artist Z - Song W/06.1
type PlaylistCreator struct{}

// NewPlaylistCreator creates a new PlaylistCreator.
func NewPlaylistCreator() *PlaylistCreator {
	return &PlaylistCreator{}
}

// CreatePlaylist generates playlist content for an album's registered tracks.
func (p *PlaylistCreator) CreatePlaylist(album *model.Album) string {
	var sb strings.Builder

	for _, track := range album.SortedTracks() {
		sb.WriteString(track.Entry + "\n")
	}

	return sb.String()
}

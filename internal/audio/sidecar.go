package audio

import (
	"fmt"
	"strings"

	"github.com/handiism/bemani-autotag/internal/model"
)

// Tag keys written to sidecar files, in output order.
const (
	TagAlbum       = "@ALBUM@"
	TagAlbumArtist = "@ALBUMARTIST@"
	TagDate        = "@DATE@"
	TagYear        = "@YEAR@"
	TagArtist      = "@ARTIST@"
	TagTitle       = "@TITLE@"
	TagTrack       = "@TRACK@"

	// TagSubsongTitle overrides the title of the file listed right after it.
	TagSubsongTitle = "%TITLE%"
)

// TagConfig holds the values that do not come from folder names.
type TagConfig struct {
	// AlbumArtist is written as @ALBUMARTIST@ for every track.
	AlbumArtist string

	// PreviewSuffix is appended to the title of preview payloads.
	PreviewSuffix string
}

// DefaultTagConfig returns the default tag configuration.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		AlbumArtist:   "Konami",
		PreviewSuffix: " (preview)",
	}
}

// Tagger renders tag sidecar files for track folders.
//
// A sidecar is a small playlist living next to the payload files. Players
// that understand "# @KEY@ value" comment lines (vgmstream's !tags.m3u
// convention) pick up album, artist, title and track number from it:
//
//	# @ALBUM@ Foo Game
//	# @ALBUMARTIST@ Konami
//	# @DATE@ 2003-05-01
//	# @YEAR@ 2003
//	# @ARTIST@ Artist X
//	# @TITLE@ Song Y
//	# @TRACK@ 05
//	05.1
//	# %TITLE% Song Y (preview)
//	05.2dx9
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// CreateSidecar returns the sidecar content for a folder track.
//
// @DATE@ and @YEAR@ are only written when the album has them. Every payload
// candidate is listed in selection order, previews preceded by a title line.
func (t *Tagger) CreateSidecar(track *model.Track, album *model.Album) string {
	var sb strings.Builder

	writeTag(&sb, TagAlbum, album.Name)
	writeTag(&sb, TagAlbumArtist, t.config.AlbumArtist)
	if album.HasReleaseDescriptor() {
		writeTag(&sb, TagDate, album.ReleaseDescriptor)
	}
	if album.HasYear() {
		writeTag(&sb, TagYear, album.Year)
	}
	writeTag(&sb, TagArtist, track.Artist)
	writeTag(&sb, TagTitle, track.Title)
	writeTag(&sb, TagTrack, track.Number)

	for _, payload := range track.Payloads {
		if model.IsPreview(payload) {
			writeTag(&sb, TagSubsongTitle, track.Title+t.config.PreviewSuffix)
		}
		sb.WriteString(payload + "\n")
	}

	return sb.String()
}

func writeTag(sb *strings.Builder, key, value string) {
	sb.WriteString(fmt.Sprintf("# %s %s\n", key, value))
}

package audio

import (
	"strings"
	"testing"

	"github.com/handiism/bemani-autotag/internal/model"
)

func TestPlaylistCreator_LexicalOrder(t *testing.T) {
	order, err := model.ParseTrackOrder(strings.NewReader("a.sd9\nc.sd9\n"))
	if err != nil {
		t.Fatalf("ParseTrackOrder() error = %v", err)
	}

	album := createTestAlbum("Foo")
	album.AddTrack(model.NewDiscTrack("b.sd9", order))
	album.AddTrack(model.NewDiscTrack("c.sd9", order))
	album.AddTrack(model.NewDiscTrack("a.sd9", order))

	content := NewPlaylistCreator().CreatePlaylist(album)

	want := "a.sd9\nc.sd9\nb.sd9\n"
	if content != want {
		t.Errorf("CreatePlaylist() = %q, want %q", content, want)
	}
}

func TestPlaylistCreator_MixedTracks(t *testing.T) {
	album := createTestAlbum("Foo")

	track, err := model.NewFolderTrack("/rips/Foo/Artist X - Song Y", []string{"05.2dx", "05.1"})
	if err != nil {
		t.Fatalf("NewFolderTrack() error = %v", err)
	}
	album.AddTrack(track)
	album.AddTrack(model.NewDiscTrack("intro.sd9", nil))

	content := NewPlaylistCreator().CreatePlaylist(album)

	want := "intro.sd9\nArtist X - Song Y/05.1\n"
	if content != want {
		t.Errorf("CreatePlaylist() = %q, want %q", content, want)
	}
}

func TestPlaylistCreator_Empty(t *testing.T) {
	album := createTestAlbum("Foo")

	if content := NewPlaylistCreator().CreatePlaylist(album); content != "" {
		t.Errorf("CreatePlaylist() = %q, want empty", content)
	}
}

func createTestAlbum(folder string) *model.Album {
	cfg := &model.PathConfig{
		OverrideFileName:  "!tags.m3u",
		NoteFileName:      "note.txt",
		PlaylistExtension: ".m3u8",
	}
	return model.NewAlbum("/rips/"+folder, cfg)
}

package audio

import (
	"testing"

	"github.com/handiism/bemani-autotag/internal/model"
)

func TestTagger_CreateSidecar(t *testing.T) {
	album := createTestAlbum("Foo")
	track, err := model.NewFolderTrack("/rips/Foo/Artist X - Song Y", []string{"05.1"})
	if err != nil {
		t.Fatalf("NewFolderTrack() error = %v", err)
	}

	got := NewTagger(nil).CreateSidecar(track, album)

	want := "# @ALBUM@ Foo\n" +
		"# @ALBUMARTIST@ Konami\n" +
		"# @ARTIST@ Artist X\n" +
		"# @TITLE@ Song Y\n" +
		"# @TRACK@ 05\n" +
		"05.1\n"
	if got != want {
		t.Errorf("CreateSidecar() =\n%s\nwant\n%s", got, want)
	}
}

func TestTagger_CreateSidecarWithDateAndPreview(t *testing.T) {
	album := createTestAlbum("Foo Game (2003-05-01)")
	track, err := model.NewFolderTrack("/rips/Foo Game (2003-05-01)/A - B", []string{"t1.2dx9", "t1.1", "t1.2dx"})
	if err != nil {
		t.Fatalf("NewFolderTrack() error = %v", err)
	}

	got := NewTagger(DefaultTagConfig()).CreateSidecar(track, album)

	want := "# @ALBUM@ Foo Game\n" +
		"# @ALBUMARTIST@ Konami\n" +
		"# @DATE@ 2003-05-01\n" +
		"# @YEAR@ 2003\n" +
		"# @ARTIST@ A\n" +
		"# @TITLE@ B\n" +
		"# @TRACK@ t1\n" +
		"t1.1\n" +
		"t1.2dx\n" +
		"# %TITLE% B (preview)\n" +
		"t1.2dx9\n"
	if got != want {
		t.Errorf("CreateSidecar() =\n%s\nwant\n%s", got, want)
	}
}

func TestTagger_DescriptorWithoutDash(t *testing.T) {
	album := createTestAlbum("Foo (AC)")
	track, _ := model.NewFolderTrack("/rips/Foo (AC)/A - B", []string{"01.1"})

	got := NewTagger(&TagConfig{AlbumArtist: "Bemani"}).CreateSidecar(track, album)

	want := "# @ALBUM@ Foo\n" +
		"# @ALBUMARTIST@ Bemani\n" +
		"# @DATE@ AC\n" +
		"# @YEAR@ AC\n" +
		"# @ARTIST@ A\n" +
		"# @TITLE@ B\n" +
		"# @TRACK@ 01\n" +
		"01.1\n"
	if got != want {
		t.Errorf("CreateSidecar() =\n%s\nwant\n%s", got, want)
	}
}

func TestNoteCreator_CreateNote(t *testing.T) {
	album := createTestAlbum("Foo Game (Konami)")

	got := NewNoteCreator("Konami").CreateNote(album)

	want := "Game: Foo Game \n" +
		"Publisher: Konami\n" +
		"\n" +
		"The .sd9 files in the root directory and the .2dx9 files in the individual track directories can be played using vgmstream (https://vgmstream.org/).\n" +
		"The .1 files in the individual track directories can be played using bemani2wav (https://bitbucket.org/ahigerd/bemani2wav/downloads/).\n"
	if got != want {
		t.Errorf("CreateNote() =\n%q\nwant\n%q", got, want)
	}
}

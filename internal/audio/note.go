package audio

import (
	"fmt"

	"github.com/handiism/bemani-autotag/internal/model"
)

// playbackNote explains which tools can play the ripped containers.
const playbackNote = `
The .sd9 files in the root directory and the .2dx9 files in the individual track directories can be played using vgmstream (https://vgmstream.org/).
The .1 files in the individual track directories can be played using bemani2wav (https://bitbucket.org/ahigerd/bemani2wav/downloads/).
`

// NoteCreator renders the album note file.
type NoteCreator struct {
	publisher string
}

// NewNoteCreator creates a NoteCreator crediting publisher.
func NewNoteCreator(publisher string) *NoteCreator {
	return &NoteCreator{publisher: publisher}
}

// CreateNote returns the note content for album.
//
// The game line is the folder name with "(<publisher>)" cut out; whitespace
// around the cut is kept as is.
func (n *NoteCreator) CreateNote(album *model.Album) string {
	game := album.GameName("(" + n.publisher + ")")
	return fmt.Sprintf("Game: %s\nPublisher: %s\n%s", game, n.publisher, playbackNote)
}

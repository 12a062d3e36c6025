// Package audio renders the text files written next to ripped audio:
// tag sidecars, album playlists and the album note.
//
// Nothing in this package touches the filesystem; every creator returns
// file content as a string.
//
// # Tag Sidecars
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	content := tagger.CreateSidecar(track, album)
//
// # Playlists
//
//	creator := audio.NewPlaylistCreator()
//	content := creator.CreatePlaylist(album)
//
// # Note
//
//	note := audio.NewNoteCreator("Konami").CreateNote(album)
package audio

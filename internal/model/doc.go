// Package model defines the core data structures used throughout
// bemani-autotag.
//
// # Album
//
// Album represents one library folder with fields parsed from its name:
//
//	album := model.NewAlbum("/rips/Foo Game (2003-05-01)", pathConfig)
//	fmt.Println(album.Name)         // "Foo Game"
//	fmt.Println(album.Year)         // "2003"
//	fmt.Println(album.PlaylistPath) // "/rips/Foo Game (2003-05-01)/Foo Game.m3u8"
//
// # Track
//
// Track is one playlist entry, either a disc-level file or a track folder:
//
//	disc := model.NewDiscTrack("bgm.sd9", order)
//	track, err := model.NewFolderTrack("/rips/Foo Game/Artist - Title", []string{"05.2dx", "05.1"})
//	// track.Payload() == "05.1", track.Number == "05"
//
// # Ordering
//
// Playlist entries are sorted by OrderKey. Keys come from the optional
// track order override (TrackOrder) for disc tracks, and from the chosen
// payload's file name for folder tracks. All keys compare as strings.
package model

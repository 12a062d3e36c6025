package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Payload extensions recognized inside a track folder.
const (
	// PrimaryExtension marks the payload preferred as the track's file.
	PrimaryExtension = ".1"

	// PreviewExtension marks preview payloads, which sort after every other payload.
	PreviewExtension = ".2dx9"

	// KeysoundExtension is a non-primary payload with no special ordering.
	KeysoundExtension = ".2dx"

	// DiscExtension marks disc-level tracks in the library folder root.
	// It is also accepted as a payload inside track folders.
	DiscExtension = ".sd9"
)

// PayloadExtensions lists every extension that makes a file a payload candidate.
var PayloadExtensions = []string{PrimaryExtension, KeysoundExtension, PreviewExtension, DiscExtension}

// TrackNameSeparator splits a track folder name into artist and title.
const TrackNameSeparator = " - "

// ErrMissingSeparator is returned when a track folder name cannot be split
// into artist and title.
var ErrMissingSeparator = errors.New("track folder name has no \" - \" separator")

// TrackKind distinguishes disc-level tracks from track folders.
type TrackKind int

const (
	// KindDisc is a disc-level audio file directly inside the library folder.
	KindDisc TrackKind = iota

	// KindFolder is a subfolder holding one or more payload files.
	KindFolder
)

// Track represents one playlist entry of an album.
//
// Disc tracks only carry their file name. Folder tracks additionally carry
// artist and title parsed from the folder name, the track number token
// and every payload candidate in selection order.
type Track struct {
	// Kind tells disc tracks and folder tracks apart.
	Kind TrackKind

	// Order is the key the playlist is sorted by.
	Order OrderKey

	// Entry is the playlist line, relative to the library folder.
	Entry string

	// Folder is the track folder name. Empty for disc tracks.
	Folder string

	// Path is the track folder path. Empty for disc tracks.
	Path string

	// Artist and Title come from the track folder name.
	Artist string
	Title  string

	// Number is the chosen payload's file name up to its first ".".
	Number string

	// Payloads holds the payload candidates, chosen payload first.
	Payloads []string
}

// NewDiscTrack creates a disc-level track for fileName.
func NewDiscTrack(fileName string, order *TrackOrder) *Track {
	return &Track{
		Kind:  KindDisc,
		Order: order.DiscOrder(fileName),
		Entry: fileName,
	}
}

// NewFolderTrack creates a track for the folder at path from its payload
// candidates. The candidates are sorted in place; at least one is required.
//
// Returns ErrMissingSeparator (wrapped with the folder name) if the folder
// name is not of the form "ARTIST - TITLE".
func NewFolderTrack(path string, payloads []string) (*Track, error) {
	if len(payloads) == 0 {
		return nil, fmt.Errorf("track folder %q has no payload files", path)
	}

	folder := filepath.Base(path)
	artist, title, err := ParseTrackFolderName(folder)
	if err != nil {
		return nil, err
	}

	SortPayloads(payloads)
	number := TrackNumber(payloads[0])

	return &Track{
		Kind:     KindFolder,
		Order:    FolderOrder(number),
		Entry:    folder + "/" + payloads[0],
		Folder:   folder,
		Path:     path,
		Artist:   artist,
		Title:    title,
		Number:   number,
		Payloads: payloads,
	}, nil
}

// Payload returns the chosen payload file name, or "" for disc tracks.
func (t *Track) Payload() string {
	if len(t.Payloads) == 0 {
		return ""
	}
	return t.Payloads[0]
}

// ParseTrackFolderName splits name once on the first " - ".
func ParseTrackFolderName(name string) (artist, title string, err error) {
	artist, title, found := strings.Cut(name, TrackNameSeparator)
	if !found {
		return "", "", fmt.Errorf("%q: %w", name, ErrMissingSeparator)
	}
	return artist, title, nil
}

// IsPayload reports whether name ends in one of PayloadExtensions.
func IsPayload(name string) bool {
	for _, ext := range PayloadExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// IsDiscTrack reports whether name is a disc-level audio file.
func IsDiscTrack(name string) bool {
	return strings.HasSuffix(name, DiscExtension)
}

// IsPreview reports whether name is a preview payload.
func IsPreview(name string) bool {
	return strings.HasSuffix(name, PreviewExtension)
}

// SortPayloads orders payload candidates for selection: primary payloads
// first, previews last, everything else in between. Ties keep their
// relative order.
//
// Example:
//
//	names := []string{"t1.2dx", "t1.1", "t1.2dx9"}
//	SortPayloads(names) // ["t1.1", "t1.2dx", "t1.2dx9"]
func SortPayloads(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return payloadRank(names[i]) < payloadRank(names[j])
	})
}

func payloadRank(name string) int {
	switch {
	case strings.HasSuffix(name, PrimaryExtension):
		return 0
	case IsPreview(name):
		return 2
	default:
		return 1
	}
}

// TrackNumber returns the file name up to, not including, its first ".".
func TrackNumber(fileName string) string {
	number, _, _ := strings.Cut(fileName, ".")
	return number
}

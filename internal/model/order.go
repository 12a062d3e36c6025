package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// OrderKind identifies where a track's order key came from.
type OrderKind int

const (
	// OrderExplicit is a position taken from the track order override.
	OrderExplicit OrderKind = iota

	// OrderDiscFallback is used for disc tracks missing from the override.
	OrderDiscFallback

	// OrderFolderToken is the track number token of a folder track.
	OrderFolderToken
)

// OrderKey is the sort key of a playlist entry.
//
// The three kinds share one namespace and compare by their rendered string,
// so existing playlists keep their order:
//   - explicit index 3 renders as " 003"
//   - disc fallback "b.sd9" renders as "0000_b.sd9"
//   - folder token "05" renders as "05"
//
// The leading space sorts explicit entries before anything starting with a digit.
type OrderKey struct {
	Kind  OrderKind
	Index int
	Name  string
}

// ExplicitOrder returns the key for position index in the override.
func ExplicitOrder(index int) OrderKey {
	return OrderKey{Kind: OrderExplicit, Index: index}
}

// DiscFallbackOrder returns the key for a disc track not listed in the override.
func DiscFallbackOrder(fileName string) OrderKey {
	return OrderKey{Kind: OrderDiscFallback, Name: fileName}
}

// FolderOrder returns the key for a folder track with the given number token.
func FolderOrder(token string) OrderKey {
	return OrderKey{Kind: OrderFolderToken, Name: token}
}

// String renders the key in its sortable form.
func (k OrderKey) String() string {
	switch k.Kind {
	case OrderExplicit:
		return fmt.Sprintf(" %03d", k.Index)
	case OrderDiscFallback:
		return "0000_" + k.Name
	default:
		return k.Name
	}
}

// Less reports whether k sorts before other. Comparison is plain string
// ordering of the rendered keys, never numeric.
func (k OrderKey) Less(other OrderKey) bool {
	return k.String() < other.String()
}

// TrackOrder is a parsed track order override.
//
// The override is a line-oriented file. Lines are trimmed, blank lines and
// lines starting with "#" are ignored, and every remaining line names a
// track in preferred order. Lines that match no track are harmless.
//
// A nil *TrackOrder behaves like an empty override.
type TrackOrder struct {
	names []string
	index map[string]int
}

// ParseTrackOrder reads an override from r.
func ParseTrackOrder(r io.Reader) (*TrackOrder, error) {
	order := &TrackOrder{index: make(map[string]int)}

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		order.add(strings.TrimSpace(line))
		if err != nil {
			break
		}
	}

	return order, nil
}

func (o *TrackOrder) add(line string) {
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	if _, seen := o.index[line]; !seen {
		o.index[line] = len(o.names)
	}
	o.names = append(o.names, line)
}

// Len returns the number of listed names, duplicates included.
func (o *TrackOrder) Len() int {
	if o == nil {
		return 0
	}
	return len(o.names)
}

// Position returns the index of the first line naming name.
func (o *TrackOrder) Position(name string) (int, bool) {
	if o == nil {
		return 0, false
	}
	i, ok := o.index[name]
	return i, ok
}

// DiscOrder returns the order key for a disc track called fileName.
func (o *TrackOrder) DiscOrder(fileName string) OrderKey {
	if i, ok := o.Position(fileName); ok {
		return ExplicitOrder(i)
	}
	return DiscFallbackOrder(fileName)
}

package organize

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/handiism/bemani-autotag/internal/audio"
	"github.com/handiism/bemani-autotag/internal/config"
	ioutils "github.com/handiism/bemani-autotag/internal/io"
	"github.com/handiism/bemani-autotag/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an organizer progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Depth is 0 for album-level messages and 1 for track folders.
	Depth int
}

// Status is the result of looking at one library folder.
type Status int

const (
	// StatusProcessed means the folder was planned (and written unless dry run).
	StatusProcessed Status = iota

	// StatusSkipped means the input was not a directory and nothing was written.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome describes what happened to one input path.
type Outcome struct {
	// Path is the input path with one trailing separator removed.
	Path string

	Status Status

	// Reason explains a skip. Empty for processed folders.
	Reason string

	// Plan holds everything written for a processed folder.
	Plan *AlbumPlan
}

// FileWrite is one whole-file write.
type FileWrite struct {
	Path    string
	Content string
}

// AlbumPlan is the complete set of writes for one library folder.
//
// A plan is built from a single listing of the folder and its track
// folders; nothing is written until Apply.
type AlbumPlan struct {
	Album *model.Album

	// Sidecars holds one write per track folder, in listing order.
	Sidecars []FileWrite

	Note     FileWrite
	Playlist FileWrite

	// DiscTracks counts disc-level files found in the folder root.
	DiscTracks int

	// SkippedFolders lists subfolders without any payload file.
	SkippedFolders []string
}

// Manager coordinates library folder processing.
type Manager struct {
	settings *config.Settings
	pathCfg  *model.PathConfig
	tagger   *audio.Tagger
	playlist *audio.PlaylistCreator
	note     *audio.NoteCreator

	totalFolders int32
	doneFolders  int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		pathCfg:    settings.ToPathConfig(),
		tagger:     audio.NewTagger(settings.ToTagConfig()),
		playlist:   audio.NewPlaylistCreator(),
		note:       audio.NewNoteCreator(settings.Publisher),
		onProgress: onProgress,
	}
}

// Organize processes every library folder in order.
//
// Inputs that are missing or not directories are skipped. The first fatal
// error (a track folder without " - " in its name, or any filesystem
// failure) stops the run and is returned together with the outcomes of the
// folders finished before it. Cancelling ctx stops the run between folders.
func (m *Manager) Organize(ctx context.Context, paths []string) ([]Outcome, error) {
	atomic.StoreInt32(&m.totalFolders, int32(len(paths)))
	atomic.StoreInt32(&m.doneFolders, 0)

	outcomes := make([]Outcome, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		outcome, err := m.Plan(path)
		if err != nil {
			m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
			return outcomes, err
		}

		if outcome.Status == StatusProcessed && !m.settings.DryRun {
			if err := m.Apply(ctx, outcome.Plan); err != nil {
				m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
				return outcomes, err
			}
		}

		outcomes = append(outcomes, outcome)
		atomic.AddInt32(&m.doneFolders, 1)
	}

	return outcomes, nil
}

// GetProgress returns how many of the requested folders are finished.
func (m *Manager) GetProgress() (done, total int32) {
	return atomic.LoadInt32(&m.doneFolders), atomic.LoadInt32(&m.totalFolders)
}

// Plan inspects one library folder and computes every file to write.
func (m *Manager) Plan(path string) (Outcome, error) {
	path = model.TrimTrailingSeparator(path)
	if !ioutils.IsDir(path) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: not a directory", path), Level: LevelVerbose})
		return Outcome{Path: path, Status: StatusSkipped, Reason: "not a directory"}, nil
	}

	album := model.NewAlbum(path, m.pathCfg)
	m.progress(ProgressEvent{Message: album.Name, Level: LevelInfo})

	order, err := m.loadTrackOrder(album)
	if err != nil {
		return Outcome{}, err
	}

	entries, err := ioutils.ListDir(path)
	if err != nil {
		return Outcome{}, fmt.Errorf("list %s: %w", path, err)
	}

	plan := &AlbumPlan{Album: album}
	for _, entry := range entries {
		if !entry.IsDir {
			if model.IsDiscTrack(entry.Name) {
				album.AddTrack(model.NewDiscTrack(entry.Name, order))
				plan.DiscTracks++
			}
			continue
		}

		trackPath := filepath.Join(path, entry.Name)
		payloads, err := listPayloads(trackPath)
		if err != nil {
			return Outcome{}, err
		}
		if len(payloads) == 0 {
			m.progress(ProgressEvent{Message: fmt.Sprintf("No payload files in %s", entry.Name), Level: LevelVerbose, Depth: 1})
			plan.SkippedFolders = append(plan.SkippedFolders, entry.Name)
			continue
		}

		m.progress(ProgressEvent{Message: entry.Name, Level: LevelInfo, Depth: 1})
		track, err := model.NewFolderTrack(trackPath, payloads)
		if err != nil {
			return Outcome{}, fmt.Errorf("track folder %s: %w", trackPath, err)
		}
		album.AddTrack(track)

		plan.Sidecars = append(plan.Sidecars, FileWrite{
			Path:    filepath.Join(trackPath, m.settings.SidecarFileName),
			Content: m.tagger.CreateSidecar(track, album),
		})
	}

	plan.Note = FileWrite{Path: album.NotePath, Content: m.note.CreateNote(album)}
	plan.Playlist = FileWrite{Path: album.PlaylistPath, Content: m.playlist.CreatePlaylist(album)}

	return Outcome{Path: path, Status: StatusProcessed, Plan: plan}, nil
}

// Apply writes every file of plan, sidecars first, then note and playlist.
func (m *Manager) Apply(ctx context.Context, plan *AlbumPlan) error {
	writes := make([]FileWrite, 0, len(plan.Sidecars)+2)
	writes = append(writes, plan.Sidecars...)
	writes = append(writes, plan.Note, plan.Playlist)

	for _, w := range writes {
		if err := ioutils.WriteFile(ctx, w.Path, []byte(w.Content)); err != nil {
			return fmt.Errorf("write %s: %w", w.Path, err)
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", w.Path), Level: LevelVerbose, Depth: 1})
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Tagged %s: %d track folders, %d playlist entries", plan.Album.Name, len(plan.Sidecars), len(plan.Album.Tracks)),
		Level:   LevelSuccess,
	})
	return nil
}

func (m *Manager) loadTrackOrder(album *model.Album) (*model.TrackOrder, error) {
	data, found, err := ioutils.ReadFileIfExists(album.OverridePath)
	if err != nil {
		return nil, fmt.Errorf("read track order %s: %w", album.OverridePath, err)
	}
	if !found {
		return nil, nil
	}

	order, err := model.ParseTrackOrder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse track order %s: %w", album.OverridePath, err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Using track order from %s (%d entries)", filepath.Base(album.OverridePath), order.Len()), Level: LevelVerbose, Depth: 1})
	return order, nil
}

// listPayloads returns the payload candidates of a track folder in listing order.
func listPayloads(trackPath string) ([]string, error) {
	entries, err := ioutils.ListDir(trackPath)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", trackPath, err)
	}

	var payloads []string
	for _, entry := range entries {
		if !entry.IsDir && model.IsPayload(entry.Name) {
			payloads = append(payloads, entry.Name)
		}
	}
	return payloads, nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

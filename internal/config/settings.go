package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/handiism/bemani-autotag/internal/audio"
	"github.com/handiism/bemani-autotag/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Tag settings
	AlbumArtist   string `toml:"album_artist"`
	Publisher     string `toml:"publisher"`
	PreviewSuffix string `toml:"preview_suffix"`

	// File naming
	SidecarFileName   string `toml:"sidecar_file_name"`
	OverrideFileName  string `toml:"override_file_name"`
	NoteFileName      string `toml:"note_file_name"`
	PlaylistExtension string `toml:"playlist_extension"`

	// Run settings
	DryRun  bool `toml:"dry_run"`
	Verbose bool `toml:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		AlbumArtist:   "Konami",
		Publisher:     "Konami",
		PreviewSuffix: " (preview)",

		SidecarFileName:   "!tags.m3u",
		OverrideFileName:  "!tags.m3u",
		NoteFileName:      "note.txt",
		PlaylistExtension: ".m3u8",

		DryRun:  false,
		Verbose: false,
	}
}

// Load reads settings from a TOML file.
//
// Keys missing from the file keep their default value. A missing file
// yields DefaultSettings().
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	settings.normalize()

	return settings, nil
}

// Save writes settings to a TOML file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// normalize restores defaults for file names left blank, since an empty
// name would make writes target the folder itself.
func (s *Settings) normalize() {
	defaults := DefaultSettings()
	if strings.TrimSpace(s.SidecarFileName) == "" {
		s.SidecarFileName = defaults.SidecarFileName
	}
	if strings.TrimSpace(s.OverrideFileName) == "" {
		s.OverrideFileName = defaults.OverrideFileName
	}
	if strings.TrimSpace(s.NoteFileName) == "" {
		s.NoteFileName = defaults.NoteFileName
	}
	if strings.TrimSpace(s.PlaylistExtension) == "" {
		s.PlaylistExtension = defaults.PlaylistExtension
	}
}

// ToPathConfig converts settings to PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	return &model.PathConfig{
		OverrideFileName:  s.OverrideFileName,
		NoteFileName:      s.NoteFileName,
		PlaylistExtension: s.PlaylistExtension,
	}
}

// ToTagConfig converts settings to TagConfig.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	return &audio.TagConfig{
		AlbumArtist:   s.AlbumArtist,
		PreviewSuffix: s.PreviewSuffix,
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if *settings != *DefaultSettings() {
		t.Errorf("Load() = %+v, want defaults", settings)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autotag.toml")
	content := "album_artist = \"Bemani Sound Team\"\nnote_file_name = \"\"\ndry_run = true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if settings.AlbumArtist != "Bemani Sound Team" {
		t.Errorf("AlbumArtist = %q", settings.AlbumArtist)
	}
	if settings.Publisher != "Konami" {
		t.Errorf("Publisher = %q, want default", settings.Publisher)
	}
	if settings.NoteFileName != "note.txt" {
		t.Errorf("NoteFileName = %q, want blank value restored to default", settings.NoteFileName)
	}
	if !settings.DryRun {
		t.Error("DryRun should be true")
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autotag.toml")
	if err := os.WriteFile(path, []byte("album_artist = [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed TOML")
	}
}

func TestSettings_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "autotag.toml")

	settings := DefaultSettings()
	settings.PlaylistExtension = ".m3u"
	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.PlaylistExtension != ".m3u" {
		t.Errorf("PlaylistExtension = %q, want %q", loaded.PlaylistExtension, ".m3u")
	}
}

func TestSettings_Conversions(t *testing.T) {
	settings := DefaultSettings()

	pathCfg := settings.ToPathConfig()
	if pathCfg.OverrideFileName != "!tags.m3u" || pathCfg.NoteFileName != "note.txt" || pathCfg.PlaylistExtension != ".m3u8" {
		t.Errorf("ToPathConfig() = %+v", pathCfg)
	}

	tagCfg := settings.ToTagConfig()
	if tagCfg.AlbumArtist != "Konami" || tagCfg.PreviewSuffix != " (preview)" {
		t.Errorf("ToTagConfig() = %+v", tagCfg)
	}
}

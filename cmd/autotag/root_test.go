package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/bemani-autotag/internal/model"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func makeAlbum(t *testing.T, name string, trackFolders ...string) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), name)
	for _, folder := range trackFolders {
		dir := filepath.Join(root, folder)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "01.1"), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestRootCommand_ProgressOutput(t *testing.T) {
	root := makeAlbum(t, "Foo (2001-02-03)", "A - B")

	out, err := runCommand(t, root)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := "Foo\n\tA - B\nTagged Foo: 1 track folders, 1 playlist entries\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if _, err := os.Stat(filepath.Join(root, "Foo.m3u8")); err != nil {
		t.Errorf("playlist not written: %v", err)
	}
}

func TestRootCommand_NoArgs(t *testing.T) {
	out, err := runCommand(t)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestRootCommand_DashPrefixedFolder(t *testing.T) {
	root := makeAlbum(t, "-Foo", "A - B")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(filepath.Dir(root)); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := runCommand(t, "--", "-Foo")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "-Foo\n") {
		t.Errorf("output = %q, want album progress first", out)
	}
	if _, err := os.Stat(filepath.Join(root, "-Foo.m3u8")); err != nil {
		t.Errorf("playlist not written: %v", err)
	}
	if !strings.Contains(newRootCommand().Long, `"--"`) {
		t.Error("help text should explain how to pass folders starting with -")
	}
}

func TestRootCommand_DryRunSummary(t *testing.T) {
	root := makeAlbum(t, "Foo", "A - B", "C - D")

	out, err := runCommand(t, "--dry-run", "--summary", "always", root)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	for _, want := range []string{"Dry run", "Total", "Foo.m3u8"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "note.txt")); !os.IsNotExist(err) {
		t.Error("dry run should not write note.txt")
	}
}

func TestRootCommand_MissingSeparator(t *testing.T) {
	root := makeAlbum(t, "Foo", "NoSeparatorHere")

	_, err := runCommand(t, root)
	if !errors.Is(err, model.ErrMissingSeparator) {
		t.Errorf("err = %v, want ErrMissingSeparator", err)
	}
}

func TestRootCommand_ConfigFile(t *testing.T) {
	root := makeAlbum(t, "Foo", "A - B")
	cfgPath := filepath.Join(t.TempDir(), "autotag.toml")
	if err := os.WriteFile(cfgPath, []byte("album_artist = \"Bemani\"\nplaylist_extension = \".m3u\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "--config", cfgPath, root); err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "A - B", "!tags.m3u"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "# @ALBUMARTIST@ Bemani\n") {
		t.Errorf("sidecar = %q, want configured album artist", data)
	}
	if _, err := os.Stat(filepath.Join(root, "Foo.m3u")); err != nil {
		t.Errorf("playlist with configured extension not written: %v", err)
	}
}

func TestShouldPrintSummary(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		mode string
		want bool
	}{
		{"always", true},
		{"never", false},
		{"auto", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := shouldPrintSummary(tt.mode, &buf); got != tt.want {
			t.Errorf("shouldPrintSummary(%q) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

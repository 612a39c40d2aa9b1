package artwork

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"

	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/model"
)

func TestEmbed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Song.mp3")
	// A tagless file at least one ID3 header (10 bytes) long, so parsing
	// finds no tag instead of hitting a short read; id3v2 prepends a fresh
	// tag on save.
	frame := make([]byte, 32)
	copy(frame, []byte{0xFF, 0xFB, 0x90, 0x00})
	if err := os.WriteFile(path, frame, 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	item := model.MediaItem{
		Title:     "Song",
		Performer: "Artist",
		FilePath:  path,
	}
	cover := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	if err := Embed(item, cover); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("Failed to reopen tag: %v", err)
	}
	defer tag.Close()

	if tag.Title() != "Song" {
		t.Errorf("Expected title 'Song', got %q", tag.Title())
	}
	if tag.Artist() != "Artist" {
		t.Errorf("Expected artist 'Artist', got %q", tag.Artist())
	}

	pictures := tag.GetFrames(tag.CommonID("Attached picture"))
	if len(pictures) != 1 {
		t.Errorf("Expected one attached picture, got %d", len(pictures))
	}
}

func TestEmbed_MissingFile(t *testing.T) {
	item := model.MediaItem{
		Title:    "Gone",
		FilePath: filepath.Join(t.TempDir(), "missing.mp3"),
	}

	if err := Embed(item, nil); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

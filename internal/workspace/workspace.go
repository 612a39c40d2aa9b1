package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultDirPermissions is applied to created workspace directories.
const DefaultDirPermissions = 0o755

// thumbnailExtensions are the image formats yt-dlp may write next to a
// track when asked to keep thumbnails on disk.
var thumbnailExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// sweepExtensions lists every artifact the engine can leave behind:
// finished audio, intermediate audio containers, thumbnail variants, and
// partial-download markers.
var sweepExtensions = []string{
	".mp3", ".m4a", ".webm", ".opus",
	".jpg", ".jpeg", ".png", ".webp",
	".part", ".ytdl",
}

// Workspace is the isolated temporary directory of a single job. Jobs never
// share one, so a failing job's cleanup sweep cannot touch another job's
// in-flight files.
type Workspace struct {
	dir string
}

// New creates a fresh directory under root, keyed by a random UUID.
func New(root string) (*Workspace, error) {
	dir := filepath.Join(root, uuid.New().String())
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

// Dir returns the workspace directory path.
func (w *Workspace) Dir() string {
	return w.dir
}

// AudioPath returns where the engine writes a track's audio file, following
// the <dir>/<title>.<ext> naming convention.
func (w *Workspace) AudioPath(title, ext string) string {
	return filepath.Join(w.dir, title+"."+ext)
}

// OutputTemplate returns the yt-dlp output template rooted in the workspace.
func (w *Workspace) OutputTemplate() string {
	return filepath.Join(w.dir, "%(title)s.%(ext)s")
}

// RemoveArtifacts deletes a track's audio file and every thumbnail variant
// that may exist for it. Called right after each delivery attempt rather
// than batched at the end, so an interrupted playlist leaves minimal
// residue.
func (w *Workspace) RemoveArtifacts(title, ext string) {
	os.Remove(w.AudioPath(title, ext))
	for _, thumbExt := range thumbnailExtensions {
		os.Remove(filepath.Join(w.dir, title+thumbExt))
	}
}

// Sweep deletes every file with a recognized media, image, or partial
// extension. Called on fatal failure so nothing the engine wrote outlives
// the job.
func (w *Workspace) Sweep() error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read workspace: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasSweepExtension(entry.Name()) {
			os.Remove(filepath.Join(w.dir, entry.Name()))
		}
	}
	return nil
}

// Close removes the workspace directory and anything left inside it.
func (w *Workspace) Close() error {
	return os.RemoveAll(w.dir)
}

func hasSweepExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range sweepExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/model"
)

// progressFrequency is how often yt-dlp emits progress updates.
const progressFrequency = 500 * time.Millisecond

// Config carries the engine options of the pipeline: audio-only extraction
// at a fixed bitrate, parallel fragment downloads, and bounded retries.
type Config struct {
	AudioFormat         string // target container, e.g. "mp3"
	AudioQuality        string // target bitrate, e.g. "128K"
	ConcurrentFragments int
	HTTPChunkSize       string // e.g. "10M"
	Retries             int
	FragmentRetries     int
}

// Hook receives progress events. Both methods are invoked from the engine's
// own goroutine while the Fetch call is still blocking.
type Hook interface {
	// Update reports raw byte counts; total may be an estimate.
	Update(downloaded, total int64)

	// StartConverting signals that downloading finished and transcoding
	// began. No byte counts follow.
	StartConverting()
}

// Engine drives yt-dlp.
type Engine struct {
	cfg Config
	log *slog.Logger
}

// NewEngine creates an engine with the given options.
func NewEngine(cfg Config, log *slog.Logger) *Engine {
	return &Engine{cfg: cfg, log: log}
}

// Fetch downloads and transcodes everything url resolves to, writing
// <title>.<format> files into outputDir. The call blocks until the engine
// is done, so run it off the coordination goroutine. Playlist links expand
// into multiple items; entries whose audio file is missing afterwards are
// skipped with a warning so a partially failed playlist still delivers.
// Failure of the whole run is fatal for the job.
func (e *Engine) Fetch(ctx context.Context, url, outputDir string, hook Hook) ([]model.MediaItem, error) {
	// NoPlaylist keeps a watch URL that merely carries a list= parameter
	// from expanding into the whole playlist; explicit playlist links still
	// expand.
	dl := ytdlp.New().
		NoPlaylist().
		Format("bestaudio/best").
		ExtractAudio().
		AudioFormat(e.cfg.AudioFormat).
		AudioQuality(e.cfg.AudioQuality).
		EmbedThumbnail().
		WriteThumbnail().
		ConcurrentFragments(e.cfg.ConcurrentFragments).
		HTTPChunkSize(e.cfg.HTTPChunkSize).
		Retries(strconv.Itoa(e.cfg.Retries)).
		FragmentRetries(strconv.Itoa(e.cfg.FragmentRetries)).
		Output(filepath.Join(outputDir, "%(title)s.%(ext)s"))

	dl.ProgressFunc(progressFrequency, func(update ytdlp.ProgressUpdate) {
		switch update.Status {
		case ytdlp.ProgressStatusFinished, ytdlp.ProgressStatusPostProcessing:
			hook.StartConverting()
		case ytdlp.ProgressStatusDownloading:
			hook.Update(int64(update.DownloadedBytes), int64(update.TotalBytes))
		}
	})

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp run: %w", err)
	}

	info, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("extract info: %w", err)
	}

	var items []model.MediaItem
	for _, entry := range flatten(info) {
		item, ok := e.buildItem(toMeta(entry), outputDir)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// entryMeta is the subset of extractor output the pipeline cares about.
type entryMeta struct {
	title     string
	uploader  string
	channel   string
	thumbnail string
	duration  float64
}

// buildItem resolves an entry's local audio file by the deterministic
// naming convention. A missing file is not fatal for the job: the engine
// can fail a single playlist entry without failing the whole run.
func (e *Engine) buildItem(meta entryMeta, outputDir string) (model.MediaItem, bool) {
	if meta.title == "" {
		e.log.Warn("skipping entry without title")
		return model.MediaItem{}, false
	}

	path := filepath.Join(outputDir, meta.title+"."+e.cfg.AudioFormat)
	if _, err := os.Stat(path); err != nil {
		e.log.Warn("audio file not found, skipping track", slog.String("path", path))
		return model.MediaItem{}, false
	}

	return model.MediaItem{
		Title:        meta.title,
		Performer:    model.ResolvePerformer(meta.uploader, meta.channel),
		Duration:     int(meta.duration),
		ThumbnailURL: meta.thumbnail,
		FilePath:     path,
	}, true
}

// flatten expands playlist results into a flat entry list, preserving the
// original order.
func flatten(info []*ytdlp.ExtractedInfo) []*ytdlp.ExtractedInfo {
	var entries []*ytdlp.ExtractedInfo
	for _, in := range info {
		if in == nil {
			continue
		}
		if len(in.Entries) > 0 {
			entries = append(entries, flatten(in.Entries)...)
			continue
		}
		entries = append(entries, in)
	}
	return entries
}

func toMeta(entry *ytdlp.ExtractedInfo) entryMeta {
	meta := entryMeta{
		title:     stringValue(entry.Title),
		uploader:  stringValue(entry.Uploader),
		channel:   stringValue(entry.Channel),
		thumbnail: stringValue(entry.Thumbnail),
	}
	if entry.Duration != nil {
		meta.duration = *entry.Duration
	}
	return meta
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

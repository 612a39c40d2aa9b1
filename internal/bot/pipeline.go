package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/artwork"
	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/classify"
	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/config"
	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/fetch"
	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/model"
	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/progress"
	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/workspace"
)

// Sender is the slice of the Telegram API the pipeline needs.
// *tgbotapi.BotAPI satisfies it; tests substitute a fake.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Engine performs the blocking download and transcode operation.
type Engine interface {
	Fetch(ctx context.Context, url, outputDir string, hook fetch.Hook) ([]model.MediaItem, error)
}

// Pipeline orchestrates one job from link to delivered audio.
type Pipeline struct {
	sender       Sender
	engine       Engine
	artwork      *artwork.Fetcher
	root         string
	audioFormat  string
	log          *slog.Logger
	pollInterval time.Duration
}

// NewPipeline creates a pipeline writing workspaces under cfg.Dir.
func NewPipeline(sender Sender, engine Engine, fetcher *artwork.Fetcher, cfg config.DownloadConfig, log *slog.Logger) *Pipeline {
	return &Pipeline{
		sender:       sender,
		engine:       engine,
		artwork:      fetcher,
		root:         cfg.Dir,
		audioFormat:  cfg.AudioFormat,
		log:          log,
		pollInterval: progress.DefaultPollInterval,
	}
}

// SetPollInterval overrides the progress reporter poll interval.
func (p *Pipeline) SetPollInterval(interval time.Duration) {
	if interval > 0 {
		p.pollInterval = interval
	}
}

// statusMessage is the single chat message reused for all progress and
// result text of one job. It is edited in place, never re-sent.
type statusMessage struct {
	sender    Sender
	chatID    int64
	messageID int
}

// EditStatus implements progress.Editor.
func (s statusMessage) EditStatus(text string) error {
	_, err := s.sender.Request(tgbotapi.NewEditMessageText(s.chatID, s.messageID, text))
	return err
}

// Run drives one job end to end: classify, download, deliver, clean up.
// Meant to be called on its own goroutine; every failure is absorbed and
// reported to the chat rather than propagated.
func (p *Pipeline) Run(ctx context.Context, chatID int64, text string) {
	platform := classify.DetectPlatform(text)
	if !platform.IsKnown() {
		p.reply(chatID, rejectText)
		return
	}

	job := model.Job{
		ID:        uuid.NewString(),
		URL:       text,
		ChatID:    chatID,
		Platform:  platform,
		StartedAt: time.Now(),
	}
	log := p.log.With(slog.String("job_id", job.ID), slog.String("platform", platform.String()))
	log.Info("job started", slog.String("url", job.URL))

	sent, err := p.sender.Send(tgbotapi.NewMessage(chatID, startingText))
	if err != nil {
		log.Error("cannot send status message", slog.Any("error", err))
		return
	}
	status := statusMessage{sender: p.sender, chatID: chatID, messageID: sent.MessageID}

	ws, err := workspace.New(p.root)
	if err != nil {
		log.Error("cannot create workspace", slog.Any("error", err))
		p.editStatus(status, "❌ "+classify.UserMessage(err))
		return
	}
	defer ws.Close()

	tracker := progress.NewTracker()
	reporter := progress.NewReporter(tracker, status, log)
	reporter.SetInterval(p.pollInterval)
	go reporter.Run()

	items, err := p.engine.Fetch(ctx, job.URL, ws.Dir(), tracker)
	if err != nil {
		tracker.Fail()
		reporter.Wait()
		log.Error("download failed", slog.Any("error", err))
		p.editStatus(status, "❌ "+classify.UserMessage(err))
		if sweepErr := ws.Sweep(); sweepErr != nil {
			log.Warn("cleanup sweep failed", slog.Any("error", sweepErr))
		}
		return
	}

	// The reporter must be gone before the final status writes, so no
	// stale progress edit races them.
	tracker.Finish()
	reporter.Wait()

	delivered := p.deliver(ctx, status, ws, items)
	p.editStatus(status, fmt.Sprintf(doneFormat, delivered))
	log.Info("job finished",
		slog.Int("delivered", delivered),
		slog.Int("resolved", len(items)),
		slog.Duration("took", time.Since(job.StartedAt)),
	)
}

// deliver uploads each track in original order, removing its artifacts
// immediately after the attempt rather than batched at the end, so an
// interrupted playlist leaves minimal residue. Returns the number of
// tracks actually sent.
func (p *Pipeline) deliver(ctx context.Context, status statusMessage, ws *workspace.Workspace, items []model.MediaItem) int {
	if len(items) > 1 {
		p.editStatus(status, fmt.Sprintf(foundTracksFormat, len(items)))
	}

	delivered := 0
	for i, item := range items {
		if len(items) > 1 {
			p.editStatus(status, fmt.Sprintf(uploadingItemFormat, i+1, len(items), truncate(item.Title, maxTitleInStatus)))
		} else {
			p.editStatus(status, uploadingText)
		}

		if err := p.sendAudio(ctx, status.chatID, item); err != nil {
			p.log.Warn("track upload failed", slog.String("title", item.Title), slog.Any("error", err))
		} else {
			delivered++
		}

		// Artifacts go away whether or not the upload landed.
		ws.RemoveArtifacts(item.Title, p.audioFormat)
	}
	return delivered
}

// sendAudio uploads one track with metadata. The thumbnail is best effort:
// any fetch or embed failure degrades to a track without artwork.
func (p *Pipeline) sendAudio(ctx context.Context, chatID int64, item model.MediaItem) error {
	var cover []byte
	if item.ThumbnailURL != "" {
		data, err := p.artwork.Fetch(ctx, item.ThumbnailURL)
		if err != nil {
			p.log.Debug("thumbnail fetch failed", slog.String("title", item.Title), slog.Any("error", err))
		} else {
			cover = data
		}
	}

	if len(cover) > 0 {
		if err := artwork.Embed(item, cover); err != nil {
			p.log.Debug("cover embed failed", slog.String("title", item.Title), slog.Any("error", err))
		}
	}

	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(item.FilePath))
	audio.Title = item.Title
	audio.Performer = item.Performer
	audio.Duration = item.Duration
	if len(cover) > 0 {
		audio.Thumb = tgbotapi.FileBytes{Name: "cover.jpg", Bytes: cover}
	}

	if _, err := p.sender.Send(audio); err != nil {
		return fmt.Errorf("send audio: %w", err)
	}
	return nil
}

func (p *Pipeline) editStatus(status statusMessage, text string) {
	if err := status.EditStatus(text); err != nil {
		p.log.Debug("status edit dropped", slog.Any("error", err))
	}
}

func (p *Pipeline) reply(chatID int64, text string) {
	if _, err := p.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		p.log.Warn("reply failed", slog.Any("error", err))
	}
}

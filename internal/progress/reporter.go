package progress

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/model"
)

// Editor rewrites the user-facing status message in place.
type Editor interface {
	EditStatus(text string) error
}

const (
	// DefaultPollInterval is how often the reporter samples the tracker.
	DefaultPollInterval = 500 * time.Millisecond

	// minPercentStep is the advance that always triggers an edit.
	minPercentStep = 5

	// maxEditSilence forces an edit after this much time, provided the
	// percentage advanced at all.
	maxEditSilence = 2 * time.Second
)

// Reporter samples a tracker on a fixed interval and edits the status
// message under a throttling policy: an edit goes out when the percentage
// advanced at least 5 points, or when 2 seconds passed since the last edit
// and the percentage advanced at all. The transition into the converting
// phase is announced exactly once. Edit failures are swallowed; the message
// may have been deleted or the text unchanged, and neither may break the
// pipeline.
type Reporter struct {
	tracker  *Tracker
	editor   Editor
	log      *slog.Logger
	interval time.Duration
	done     chan struct{}
}

// NewReporter creates a reporter over tracker that edits through editor.
func NewReporter(tracker *Tracker, editor Editor, log *slog.Logger) *Reporter {
	return &Reporter{
		tracker:  tracker,
		editor:   editor,
		log:      log,
		interval: DefaultPollInterval,
		done:     make(chan struct{}),
	}
}

// SetInterval overrides the poll interval.
func (r *Reporter) SetInterval(interval time.Duration) {
	if interval > 0 {
		r.interval = interval
	}
}

// Run polls the tracker until it reaches a terminal phase. Call it on its
// own goroutine; the final status write must wait for Wait.
func (r *Reporter) Run() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var lastPercent int
	var lastEdit time.Time
	announced := false

	for range ticker.C {
		snap := r.tracker.Snapshot()

		switch snap.Phase {
		case model.PhaseDownloading:
			percent := int(snap.Percent)
			if percent <= 0 {
				continue
			}
			advanced := percent > lastPercent
			if percent-lastPercent >= minPercentStep || (advanced && time.Since(lastEdit) >= maxEditSilence) {
				r.edit(fmt.Sprintf("⏬ Downloading: %d%%", percent))
				lastPercent = percent
				lastEdit = time.Now()
			}

		case model.PhaseConverting:
			if !announced {
				r.edit("🔄 Converting to MP3...")
				announced = true
			}

		default:
			// Done or error; the orchestrator writes the final text.
			return
		}
	}
}

// Wait blocks until the reporter loop has exited. The orchestrator calls it
// after flipping the tracker terminal, guaranteeing no stale progress edit
// races the final status message.
func (r *Reporter) Wait() {
	<-r.done
}

func (r *Reporter) edit(text string) {
	if err := r.editor.EditStatus(text); err != nil {
		r.log.Debug("status edit dropped", slog.Any("error", err))
	}
}

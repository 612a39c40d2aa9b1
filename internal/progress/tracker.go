package progress

import (
	"sync"

	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/model"
)

// Tracker is the mutable progress record of a single job. It is owned by
// exactly one job: the engine callback is the only writer of byte counts
// and the orchestrator is the only writer of terminal phases.
type Tracker struct {
	mu      sync.Mutex
	percent float64
	phase   model.Phase
}

// NewTracker returns a tracker in the downloading phase.
func NewTracker() *Tracker {
	return &Tracker{phase: model.PhaseDownloading}
}

// Update recomputes the download percentage from raw byte counts. The total
// may be an estimate when the source does not report an exact size; a zero
// total leaves the percentage untouched. The reported percentage never
// regresses and never exceeds 100.
func (t *Tracker) Update(downloaded, total int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase != model.PhaseDownloading || total <= 0 {
		return
	}

	percent := float64(downloaded) / float64(total) * 100
	if percent > 100 {
		percent = 100
	}
	if percent > t.percent {
		t.percent = percent
	}
}

// StartConverting flips the record into the converting phase. The engine
// reports no percentage while transcoding.
func (t *Tracker) StartConverting() {
	t.setPhase(model.PhaseConverting)
}

// Finish marks the job done.
func (t *Tracker) Finish() {
	t.setPhase(model.PhaseDone)
}

// Fail marks the job failed.
func (t *Tracker) Fail() {
	t.setPhase(model.PhaseError)
}

func (t *Tracker) setPhase(phase model.Phase) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Terminal phases stick; a late engine callback cannot resurrect the job.
	if t.phase.IsTerminal() {
		return
	}
	t.phase = phase
}

// Snapshot returns the current progress value.
func (t *Tracker) Snapshot() model.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return model.Progress{Percent: t.percent, Phase: t.phase}
}

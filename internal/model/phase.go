package model

// Phase represents the stage a job is currently in
type Phase string

const (
	// PhaseDownloading means the engine is pulling bytes from the source
	PhaseDownloading Phase = "downloading"

	// PhaseConverting means the engine is transcoding; no byte counts are
	// reported during this phase
	PhaseConverting Phase = "converting"

	// PhaseDone means the job finished successfully
	PhaseDone Phase = "done"

	// PhaseError means the job failed
	PhaseError Phase = "error"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsTerminal returns true once the job can no longer make progress
func (p Phase) IsTerminal() bool {
	return p == PhaseDone || p == PhaseError
}

// Progress is a point-in-time snapshot of a job's progress record.
type Progress struct {
	Percent float64 // 0 to 100
	Phase   Phase
}

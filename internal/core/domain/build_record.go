package domain

import "time"

// BuildRecord describes the most recent build of a target.
type BuildRecord struct {
	Target      string    `json:"target,omitzero"`
	Mode        string    `json:"mode,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	ExitCode    int       `json:"exit_code"`
	DryRun      bool      `json:"dry_run,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

// Status derives the outcome of the recorded build.
func (r BuildRecord) Status() BuildStatus {
	switch {
	case r.DryRun:
		return BuildStatusSkipped
	case r.ExitCode == 0:
		return BuildStatusCompleted
	default:
		return BuildStatusFailed
	}
}

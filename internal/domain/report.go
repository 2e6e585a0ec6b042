package domain

import "time"

// DriveStatus is the outcome of wiping one drive.
type DriveStatus string

// Drive statuses.
const (
	DriveStatusOK     DriveStatus = "ok"
	DriveStatusFailed DriveStatus = "failed"
	DriveStatusDryRun DriveStatus = "dry-run"
)

// DriveResult records what happened to one drive during a sweep.
// Fields are ordered to minimize memory padding.
type DriveResult struct {
	Err      error
	Command  *ExecCommand
	Drive    Drive
	Status   DriveStatus
	Duration time.Duration
}

// RunReport summarizes a sweep. It is persisted after the drive loop.
// Fields are ordered to minimize memory padding.
type RunReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Executable string
	Drives     []DriveResult
	DryRun     bool
}

// Counts returns the number of succeeded and failed drives.
// Dry-run drives count as succeeded.
func (r *RunReport) Counts() (ok, failed int) {
	for _, d := range r.Drives {
		if d.Status == DriveStatusFailed {
			failed++
		} else {
			ok++
		}
	}
	return ok, failed
}

package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/freewipe/internal/domain"
)

// ExitPrompt is shown before the process exits.
const ExitPrompt = "Press Enter to exit..."

// SweepInput contains the input parameters for Sweep.
// Fields are ordered to minimize memory padding.
type SweepInput struct {
	Paths       domain.ToolPaths
	URL         string // Archive download URL
	Letters     []byte // Restrict to these drive letters (empty = all)
	Passes      int    // Overwrite passes
	KeepArchive bool   // Keep the archive after extraction
	DryRun      bool   // Print commands instead of running them
	Pause       bool   // Wait for Enter before returning
}

// SweepOutput contains the output from Sweep.
type SweepOutput struct {
	Tool   *PrepareToolOutput
	Report *domain.RunReport
}

// Sweep is the whole run: prepare SDelete, enumerate drives, wipe each
// drive's free space, record a report and wait for the user.
type Sweep struct {
	prepare   *PrepareTool
	list      *ListDrives
	wipe      *WipeDrives
	reports   domain.ReportWriter // nil disables reports
	pauser    domain.Pauser
	presenter domain.Presenter
	logger    domain.Logger
	clock     domain.Clock
}

// NewSweep creates a new Sweep use case.
func NewSweep(
	prepare *PrepareTool,
	list *ListDrives,
	wipe *WipeDrives,
	reports domain.ReportWriter,
	pauser domain.Pauser,
	presenter domain.Presenter,
	logger domain.Logger,
	clock domain.Clock,
) *Sweep {
	return &Sweep{
		prepare:   prepare,
		list:      list,
		wipe:      wipe,
		reports:   reports,
		pauser:    pauser,
		presenter: presenter,
		logger:    logger,
		clock:     clock,
	}
}

// Execute runs the sweep. A fatal setup error aborts before any drive is
// enumerated. Per-drive failures never abort; they are part of the report.
// A dry run writes no report.
func (uc *Sweep) Execute(ctx context.Context, in SweepInput) (*SweepOutput, error) {
	started := uc.clock.Now()

	tool, err := uc.prepare.Execute(ctx, PrepareToolInput{
		Paths:       in.Paths,
		URL:         in.URL,
		KeepArchive: in.KeepArchive,
		DryRun:      in.DryRun,
	})
	if err != nil {
		return nil, err
	}

	listed, err := uc.list.Execute(ctx, ListDrivesInput{Letters: in.Letters})
	if err != nil {
		return nil, fmt.Errorf("list drives: %w", err)
	}
	for _, l := range listed.Missing {
		uc.presenter.Warn(fmt.Sprintf("drive %s not found, skipping", domain.DriveRoot(l)))
	}

	uc.presenter.Step("Drives to clean:")
	uc.presenter.Drives(listed.Drives)

	wiped, wipeErr := uc.wipe.Execute(ctx, WipeDrivesInput{
		Executable: tool.Executable,
		Drives:     listed.Drives,
		Passes:     in.Passes,
		DryRun:     in.DryRun,
	})

	report := &domain.RunReport{
		StartedAt:  started,
		FinishedAt: uc.clock.Now(),
		Executable: tool.Executable,
		Drives:     wiped.Results,
		DryRun:     in.DryRun,
	}
	if uc.reports != nil && !in.DryRun {
		if err := uc.reports.Write(report); err != nil {
			uc.logger.Warn("", "report", err.Error())
			uc.presenter.Warn("could not write run report: " + err.Error())
		}
	}

	ok, failed := report.Counts()
	uc.logger.Info("", "wipe", fmt.Sprintf("sweep finished: %d succeeded, %d failed", ok, failed))
	uc.presenter.Step(fmt.Sprintf("Disk cleanup finished: %d succeeded, %d failed.", ok, failed))

	out := &SweepOutput{Tool: tool, Report: report}
	if wipeErr != nil {
		return out, wipeErr
	}

	if in.Pause {
		if err := uc.pauser.Pause(ctx, ExitPrompt); err != nil {
			return out, err
		}
	}
	return out, nil
}

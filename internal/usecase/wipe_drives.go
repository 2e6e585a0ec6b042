package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/freewipe/internal/domain"
)

// WipeDrivesInput contains the input parameters for WipeDrives.
// Fields are ordered to minimize memory padding.
type WipeDrivesInput struct {
	Executable string         // Path to sdelete.exe
	Drives     []domain.Drive // Drives to wipe, in order
	Passes     int            // Overwrite passes
	DryRun     bool           // Print commands instead of running them
}

// WipeDrivesOutput contains the output from WipeDrives.
type WipeDrivesOutput struct {
	Results []domain.DriveResult // One result per visited drive, in order
}

// WipeDrives runs SDelete against each drive in turn.
type WipeDrives struct {
	executor  domain.CommandExecutor
	presenter domain.Presenter
	logger    domain.Logger
	clock     domain.Clock
}

// NewWipeDrives creates a new WipeDrives use case.
func NewWipeDrives(
	executor domain.CommandExecutor,
	presenter domain.Presenter,
	logger domain.Logger,
	clock domain.Clock,
) *WipeDrives {
	return &WipeDrives{
		executor:  executor,
		presenter: presenter,
		logger:    logger,
		clock:     clock,
	}
}

// wipeBanner is the banner shown before a drive is wiped.
func wipeBanner(d domain.Drive) string {
	return fmt.Sprintf("Cleaning up free space on drive %s, please wait...", d.Root)
}

// Execute wipes the free space of every drive sequentially. A drive that
// fails is recorded and the loop moves on. Only cancellation of ctx stops
// the loop early; the results gathered so far are returned with ctx's error.
func (uc *WipeDrives) Execute(ctx context.Context, in WipeDrivesInput) (*WipeDrivesOutput, error) {
	out := &WipeDrivesOutput{
		Results: make([]domain.DriveResult, 0, len(in.Drives)),
	}

	for _, d := range in.Drives {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		uc.presenter.Banner(wipeBanner(d))
		cmd := domain.WipeFreeSpaceCommand(in.Executable, in.Passes, d)
		res := domain.DriveResult{Drive: d, Command: cmd}

		if in.DryRun {
			uc.presenter.Step("dry run: " + cmd.String())
			res.Status = domain.DriveStatusDryRun
			out.Results = append(out.Results, res)
			continue
		}

		uc.logger.Info(d.Root, "wipe", "running "+cmd.String())
		start := uc.clock.Now()
		err := uc.executor.ExecuteWithContext(ctx, cmd, uc.presenter.Output(), uc.presenter.Output())
		res.Duration = uc.clock.Now().Sub(start)

		if err != nil {
			res.Status = domain.DriveStatusFailed
			res.Err = err
			uc.logger.Error(d.Root, "wipe", "sdelete failed: "+err.Error())
			uc.presenter.Warn(fmt.Sprintf("SDelete failed on %s: %v", d.Root, err))
		} else {
			res.Status = domain.DriveStatusOK
			uc.logger.Info(d.Root, "wipe", fmt.Sprintf("finished in %s", res.Duration))
		}
		out.Results = append(out.Results, res)
	}

	return out, nil
}

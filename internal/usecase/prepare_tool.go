// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/runoshun/freewipe/internal/domain"
)

// PrepareToolInput contains the input parameters for PrepareTool.
// Fields are ordered to minimize memory padding.
type PrepareToolInput struct {
	Paths       domain.ToolPaths
	URL         string // Archive download URL
	KeepArchive bool   // Keep the archive after extraction
	Force       bool   // Download even if the executable exists
	DryRun      bool   // Report what would be downloaded without doing it
}

// PrepareToolOutput contains the output from PrepareTool.
// Fields are ordered to minimize memory padding.
type PrepareToolOutput struct {
	Extracted  *domain.ExtractResult // nil unless the archive was extracted
	CleanupErr *domain.SetupError    // Non-fatal archive removal failure
	Executable string                // Path to sdelete.exe
	Bytes      int64                 // Downloaded bytes
	Downloaded bool                  // True if the archive was downloaded in this run
	Installed  bool                  // True if the executable exists
}

// PrepareTool makes sure the SDelete executable is available, downloading
// and extracting it when it is missing.
type PrepareTool struct {
	fetcher   domain.Fetcher
	extractor domain.Extractor
	presenter domain.Presenter
	logger    domain.Logger
}

// NewPrepareTool creates a new PrepareTool use case.
func NewPrepareTool(
	fetcher domain.Fetcher,
	extractor domain.Extractor,
	presenter domain.Presenter,
	logger domain.Logger,
) *PrepareTool {
	return &PrepareTool{
		fetcher:   fetcher,
		extractor: extractor,
		presenter: presenter,
		logger:    logger,
	}
}

// Execute downloads and extracts SDelete unless the executable already exists.
// Every returned error is a fatal *domain.SetupError. Directory permissions
// are checked before any network request is made.
func (uc *PrepareTool) Execute(ctx context.Context, in PrepareToolInput) (*PrepareToolOutput, error) {
	out := &PrepareToolOutput{Executable: in.Paths.Executable}

	if !in.Force && fileExists(in.Paths.Executable) {
		uc.logger.Debug("", "prepare", "sdelete already installed at "+in.Paths.Executable)
		out.Installed = true
		return out, nil
	}

	if in.DryRun {
		uc.presenter.Step(fmt.Sprintf("dry run: would download %s to %s", in.URL, in.Paths.Archive))
		return out, nil
	}

	for _, dir := range []string{in.Paths.Dir, filepath.Dir(in.Paths.Archive)} {
		if err := ensureWritableDir(dir); err != nil {
			uc.logger.Error("", "prepare", err.Error())
			return nil, domain.NewSetupError(domain.StagePrepare, err)
		}
	}

	uc.presenter.Step("Downloading SDelete from " + in.URL)
	n, err := uc.fetcher.Fetch(ctx, in.URL, in.Paths.Archive, uc.presenter.Progress())
	if err != nil {
		uc.logger.Error("", "fetch", err.Error())
		return nil, domain.NewSetupError(domain.StageDownload, err)
	}
	out.Downloaded = true
	out.Bytes = n
	uc.logger.Info("", "fetch", fmt.Sprintf("downloaded %d bytes to %s", n, in.Paths.Archive))

	uc.presenter.Step("Extracting SDelete to " + in.Paths.Dir)
	res, err := uc.extractor.Extract(in.Paths.Archive, in.Paths.Dir, uc.presenter.Progress())
	if err != nil {
		uc.logger.Error("", "extract", err.Error())
		return nil, domain.NewSetupError(domain.StageExtract, err)
	}
	out.Extracted = res
	uc.logger.Info("", "extract", fmt.Sprintf("extracted %d files (%d bytes)", len(res.Files), res.Written))

	if !fileExists(in.Paths.Executable) {
		err := fmt.Errorf("%w: %s", domain.ErrExecutableMissing, in.Paths.Executable)
		uc.logger.Error("", "extract", err.Error())
		return nil, domain.NewSetupError(domain.StageVerify, err)
	}
	out.Installed = true
	uc.presenter.Step("SDelete is ready: " + in.Paths.Executable)

	if !in.KeepArchive {
		if err := os.Remove(in.Paths.Archive); err != nil && !errors.Is(err, fs.ErrNotExist) {
			out.CleanupErr = domain.NewSetupError(domain.StageCleanup, err)
			uc.logger.Warn("", "prepare", out.CleanupErr.Error())
			uc.presenter.Warn("could not remove " + in.Paths.Archive + ": " + err.Error())
		}
	}

	return out, nil
}

// fileExists reports whether path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ensureWritableDir creates dir if needed and checks that files can be
// created in it.
func ensureWritableDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, ".freewipe-probe-*")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s: %w", domain.ErrDirectoryNotWritable, dir, err)
		}
		return fmt.Errorf("probe %s: %w", dir, err)
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}

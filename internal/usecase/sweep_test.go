package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/runoshun/freewipe/internal/domain"
	"github.com/runoshun/freewipe/internal/testutil"
	"github.com/runoshun/freewipe/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sweepFixture struct {
	fetcher    *testutil.MockFetcher
	extractor  *testutil.MockExtractor
	enumerator *testutil.MockEnumerator
	executor   *testutil.MockExecutor
	presenter  *testutil.MockPresenter
	pauser     *testutil.MockPauser
	reports    *testutil.MockReportWriter
	logger     *testutil.MockLogger
	clock      *testutil.MockClock
	paths      domain.ToolPaths
}

func newSweepFixture(t *testing.T, letters ...byte) *sweepFixture {
	t.Helper()
	return &sweepFixture{
		fetcher:    &testutil.MockFetcher{Content: []byte("PK")},
		extractor:  &testutil.MockExtractor{Files: map[string]string{"sdelete.exe": "MZ"}},
		enumerator: testutil.NewMockEnumerator(letters...),
		executor:   testutil.NewMockExecutor(),
		presenter:  &testutil.MockPresenter{},
		pauser:     &testutil.MockPauser{},
		reports:    &testutil.MockReportWriter{},
		logger:     &testutil.MockLogger{},
		clock:      &testutil.MockClock{NowTime: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), Step: time.Second},
		paths:      domain.ResolveToolPaths(domain.NewDefaultConfig(), t.TempDir()),
	}
}

func (f *sweepFixture) useCase() *usecase.Sweep {
	return usecase.NewSweep(
		usecase.NewPrepareTool(f.fetcher, f.extractor, f.presenter, f.logger),
		usecase.NewListDrives(f.enumerator),
		usecase.NewWipeDrives(f.executor, f.presenter, f.logger, f.clock),
		f.reports,
		f.pauser,
		f.presenter,
		f.logger,
		f.clock,
	)
}

func (f *sweepFixture) input() usecase.SweepInput {
	return usecase.SweepInput{
		Paths:  f.paths,
		URL:    domain.DefaultToolURL,
		Passes: 1,
		Pause:  true,
	}
}

func TestSweep_InstalledToolWipesEveryDrive(t *testing.T) {
	// Setup
	f := newSweepFixture(t, 'C', 'D')
	installExecutable(t, f.paths)

	// Execute
	out, err := f.useCase().Execute(context.Background(), f.input())

	// Assert
	require.NoError(t, err)
	assert.Zero(t, f.fetcher.Calls, "no network request when sdelete is installed")
	require.Len(t, f.executor.Calls, 2)
	assert.Equal(t, f.paths.Executable, f.executor.Calls[0].Program)
	assert.Equal(t, []string{"-accepteula", "-p", "1", "-s", "-z", `C:\`}, f.executor.Calls[0].Args)
	assert.Equal(t, []string{"-accepteula", "-p", "1", "-s", "-z", `D:\`}, f.executor.Calls[1].Args)

	require.Len(t, f.presenter.DriveSets, 1)
	assert.Len(t, f.presenter.DriveSets[0], 2)
	assert.Equal(t, []string{usecase.ExitPrompt}, f.pauser.Prompts)

	require.Len(t, f.reports.Reports, 1)
	assert.Same(t, out.Report, f.reports.Reports[0])
	assert.Equal(t, f.paths.Executable, out.Report.Executable)
	assert.Len(t, out.Report.Drives, 2)
	assert.True(t, out.Report.FinishedAt.After(out.Report.StartedAt))
	assert.Contains(t, f.presenter.Steps, "Disk cleanup finished: 2 succeeded, 0 failed.")
}

func TestSweep_DownloadsWhenMissing(t *testing.T) {
	f := newSweepFixture(t, 'C')

	out, err := f.useCase().Execute(context.Background(), f.input())

	require.NoError(t, err)
	assert.Equal(t, 1, f.fetcher.Calls)
	assert.True(t, out.Tool.Downloaded)
	assert.Len(t, f.executor.Calls, 1)
}

func TestSweep_FatalSetupAbortsBeforeDrives(t *testing.T) {
	// Setup
	f := newSweepFixture(t, 'C', 'D')
	f.fetcher.Err = errors.New("no route to host")

	// Execute
	out, err := f.useCase().Execute(context.Background(), f.input())

	// Assert
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, domain.IsFatalSetup(err))
	assert.Zero(t, f.enumerator.Calls)
	assert.Empty(t, f.executor.Calls)
	assert.Empty(t, f.reports.Reports)
	assert.Empty(t, f.pauser.Prompts)
}

func TestSweep_DriveFailureIsReportedNotFatal(t *testing.T) {
	// Setup
	f := newSweepFixture(t, 'C', 'D')
	installExecutable(t, f.paths)
	f.executor.Errs[`D:\`] = errors.New("exit status 1")

	// Execute
	out, err := f.useCase().Execute(context.Background(), f.input())

	// Assert
	require.NoError(t, err)
	assert.Len(t, f.executor.Calls, 2)
	ok, failed := out.Report.Counts()
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, failed)
	assert.Contains(t, f.presenter.Steps, "Disk cleanup finished: 1 succeeded, 1 failed.")
	assert.Len(t, f.pauser.Prompts, 1)
}

func TestSweep_UnknownLettersWarn(t *testing.T) {
	// Setup
	f := newSweepFixture(t, 'C', 'D')
	installExecutable(t, f.paths)
	in := f.input()
	in.Letters = []byte{'D', 'X'}

	// Execute
	_, err := f.useCase().Execute(context.Background(), in)

	// Assert
	require.NoError(t, err)
	require.Len(t, f.executor.Calls, 1)
	assert.Equal(t, `D:\`, f.executor.Calls[0].Args[5])
	assert.Contains(t, f.presenter.Warnings, `drive X:\ not found, skipping`)
}

func TestSweep_ReportFailureOnlyWarns(t *testing.T) {
	f := newSweepFixture(t, 'C')
	installExecutable(t, f.paths)
	f.reports.Err = errors.New("disk full")

	_, err := f.useCase().Execute(context.Background(), f.input())

	require.NoError(t, err)
	assert.Contains(t, f.presenter.Warnings, "could not write run report: disk full")
	assert.Len(t, f.pauser.Prompts, 1)
}

func TestSweep_NoPause(t *testing.T) {
	f := newSweepFixture(t, 'C')
	installExecutable(t, f.paths)
	in := f.input()
	in.Pause = false

	_, err := f.useCase().Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Empty(t, f.pauser.Prompts)
}

func TestSweep_DryRun(t *testing.T) {
	// Setup
	f := newSweepFixture(t, 'C', 'D')
	in := f.input()
	in.DryRun = true

	// Execute
	out, err := f.useCase().Execute(context.Background(), in)

	// Assert
	require.NoError(t, err)
	assert.Zero(t, f.fetcher.Calls)
	assert.Empty(t, f.executor.Calls)
	assert.True(t, out.Report.DryRun)
	assert.Len(t, out.Report.Drives, 2)
	assert.Empty(t, f.reports.Reports)
}

func TestSweep_CancelSkipsPause(t *testing.T) {
	// Setup
	f := newSweepFixture(t, 'C', 'D')
	installExecutable(t, f.paths)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.executor.Before = func(*domain.ExecCommand) { cancel() }

	// Execute
	out, err := f.useCase().Execute(ctx, f.input())

	// Assert
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, out)
	assert.Len(t, out.Report.Drives, 1)
	assert.Len(t, f.reports.Reports, 1, "partial runs are still reported")
	assert.Empty(t, f.pauser.Prompts)
}

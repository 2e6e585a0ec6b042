package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/freewipe/internal/domain"
	"github.com/runoshun/freewipe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	home := t.TempDir()
	return NewWithDeps(Config{
		Home:       home,
		ConfigPath: filepath.Join(home, "cfg", domain.ConfigFileName),
	}, nil, Deps{})
}

func TestNewWithDeps_FillsDefaults(t *testing.T) {
	c := newTestContainer(t)

	assert.NotNil(t, c.Drives)
	assert.NotNil(t, c.Fetcher)
	assert.NotNil(t, c.Extractor)
	assert.NotNil(t, c.Executor)
	assert.NotNil(t, c.ConfigLoader)
	assert.NotNil(t, c.ConfigManager)
	assert.NotNil(t, c.Clock)
	assert.Equal(t, domain.DefaultPasses, c.AppConfig.Wipe.Passes)
	assert.Equal(t, c.Config.ConfigPath, c.ConfigManager.GetGlobalConfigInfo().Path)
}

func TestNewWithDeps_KeepsInjected(t *testing.T) {
	enum := testutil.NewMockEnumerator('C')
	exec := testutil.NewMockExecutor()

	c := NewWithDeps(Config{Home: t.TempDir()}, nil, Deps{Drives: enum, Executor: exec})

	assert.Same(t, enum, c.Drives)
	assert.Same(t, exec, c.Executor)
}

func TestContainer_ToolPaths(t *testing.T) {
	c := newTestContainer(t)

	paths := c.ToolPaths()

	assert.Equal(t, filepath.Join(c.Config.Home, "SDelete", "sdelete.exe"), paths.Executable)
	assert.Equal(t, filepath.Join(c.Config.Home, "SDelete.zip"), paths.Archive)
}

func TestContainer_ReportWriter(t *testing.T) {
	c := newTestContainer(t)
	assert.NotNil(t, c.reportWriter())

	disabled := false
	c.AppConfig.Report.Enabled = &disabled
	assert.Nil(t, c.reportWriter())
}

func TestContainer_OperationLoggerWritesToToolDir(t *testing.T) {
	// Setup
	c := newTestContainer(t)
	c.AppConfig.Log.Level = "debug"

	// Execute
	logger := c.OperationLogger()
	logger.Debug(`C:\`, "wipe", "hello")
	require.NoError(t, c.Close())

	// Assert
	assert.Same(t, logger, c.OperationLogger())
	data, err := os.ReadFile(filepath.Join(c.ToolPaths().LogsDir, domain.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG]")
	assert.Contains(t, string(data), "hello")
	assert.NotNil(t, c.Logger)
}

func TestContainer_DisableFileLog(t *testing.T) {
	// Setup
	c := newTestContainer(t)
	c.DisableFileLog()

	// Execute
	c.OperationLogger().Error("", "wipe", "nothing on disk")
	require.NoError(t, c.Close())

	// Assert
	assert.NoDirExists(t, c.ToolPaths().LogsDir)
}

func TestContainer_UseCaseFactories(t *testing.T) {
	c := newTestContainer(t)

	assert.NotNil(t, c.SweepUseCase(os.Stdin, os.Stdout))
	assert.NotNil(t, c.PrepareToolUseCase(os.Stdout))
	assert.NotNil(t, c.ListDrivesUseCase())
	assert.NotNil(t, c.ShowConfigUseCase())
	assert.NotNil(t, c.InitConfigUseCase())
	assert.NotNil(t, c.ShowReportUseCase())
	assert.NotNil(t, c.ShowLogsUseCase())
}

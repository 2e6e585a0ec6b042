package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/runoshun/freewipe/internal/domain"
	"github.com/runoshun/freewipe/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run("--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Wipe Commands:")
	assert.Contains(t, out, "Setup Commands:")
	assert.Contains(t, out, "--dry-run")
	assert.Empty(t, env.executor.Calls)
}

func TestNewRootCommand_Version(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run("--version")

	require.NoError(t, err)
	assert.Contains(t, out, "test-version")
}

func TestRoot_SweepsInstalledToolWithoutNetwork(t *testing.T) {
	// Setup
	env := newTestEnv(t, 'C', 'D')
	env.install(t)

	// Execute
	out, _, err := env.run("--no-pause")

	// Assert
	require.NoError(t, err)
	assert.Zero(t, env.fetcher.Calls)
	require.Len(t, env.executor.Calls, 2)
	assert.Equal(t, []string{"-accepteula", "-p", "1", "-s", "-z", `C:\`}, env.executor.Calls[0].Args)
	assert.Equal(t, []string{"-accepteula", "-p", "1", "-s", "-z", `D:\`}, env.executor.Calls[1].Args)
	assert.Contains(t, out, `Cleaning up free space on drive C:\, please wait...`)
	assert.Contains(t, out, `Cleaning up free space on drive D:\, please wait...`)
	assert.Contains(t, out, "Drive Letter")
	assert.Contains(t, out, "2 succeeded, 0 failed")
	assert.Empty(t, env.pauser.Prompts)

	paths := env.container.ToolPaths()
	assert.FileExists(t, paths.Report)
	assert.FileExists(t, filepath.Join(paths.LogsDir, domain.LogFileName))
}

func TestRoot_PausesByDefault(t *testing.T) {
	env := newTestEnv(t, 'C')
	env.install(t)

	_, _, err := env.run()

	require.NoError(t, err)
	assert.Equal(t, []string{usecase.ExitPrompt}, env.pauser.Prompts)
}

func TestRoot_DownloadsWhenMissing(t *testing.T) {
	env := newTestEnv(t, 'C')

	_, _, err := env.run("--no-pause")

	require.NoError(t, err)
	assert.Equal(t, 1, env.fetcher.Calls)
	assert.Equal(t, []string{domain.DefaultToolURL}, env.fetcher.URLs)
	assert.Len(t, env.executor.Calls, 1)
}

func TestRoot_DriveAndPassesFlags(t *testing.T) {
	// Setup
	env := newTestEnv(t, 'C', 'D', 'E')
	env.install(t)

	// Execute
	out, _, err := env.run("--no-pause", "-d", "e:", "--drive", "Q", "--passes", "3")

	// Assert
	require.NoError(t, err)
	require.Len(t, env.executor.Calls, 1)
	assert.Equal(t, []string{"-accepteula", "-p", "3", "-s", "-z", `E:\`}, env.executor.Calls[0].Args)
	assert.Contains(t, out, `drive Q:\ not found, skipping`)
}

func TestRoot_InvalidDriveLetter(t *testing.T) {
	env := newTestEnv(t, 'C')

	_, _, err := env.run("--no-pause", "--drive", "CD")

	assert.ErrorIs(t, err, domain.ErrInvalidDriveLetter)
	assert.Empty(t, env.executor.Calls)
}

func TestRoot_InvalidPasses(t *testing.T) {
	env := newTestEnv(t, 'C')

	_, _, err := env.run("--no-pause", "--passes", "0")

	assert.ErrorIs(t, err, domain.ErrInvalidPasses)
}

func TestRoot_DryRun(t *testing.T) {
	env := newTestEnv(t, 'C')

	out, _, err := env.run("--dry-run", "--no-pause")

	require.NoError(t, err)
	assert.Zero(t, env.fetcher.Calls)
	assert.Empty(t, env.executor.Calls)
	assert.Contains(t, out, `-accepteula -p 1 -s -z C:\`)
	assert.NoDirExists(t, env.container.ToolPaths().Dir)
}

func TestRoot_DriveFailureDoesNotFailCommand(t *testing.T) {
	env := newTestEnv(t, 'C', 'D')
	env.install(t)
	env.executor.Errs[`C:\`] = errors.New("exit status 1")

	out, _, err := env.run("--no-pause")

	require.NoError(t, err)
	assert.Len(t, env.executor.Calls, 2)
	assert.Contains(t, out, "1 succeeded, 1 failed")
}

func TestRoot_PermissionErrorCarriesHint(t *testing.T) {
	// Setup
	env := newTestEnv(t, 'C')
	env.fetcher.Err = fmt.Errorf("create SDelete.zip.part: %w", fs.ErrPermission)

	// Execute
	_, _, err := env.run("--no-pause")

	// Assert
	require.Error(t, err)
	assert.True(t, domain.IsFatalSetup(err))
	assert.Contains(t, err.Error(), elevationHint)
	assert.Empty(t, env.executor.Calls)
	assert.Empty(t, env.pauser.Prompts)
}

func TestRoot_ConfigWarningsPrinted(t *testing.T) {
	env := newTestEnv(t)
	env.container.AppConfig.Warnings = []string{"unknown config key: tool.mirror"}

	_, stderr, err := env.run("drives")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown config key: tool.mirror")
}

func TestParseDriveLetters(t *testing.T) {
	letters, err := parseDriveLetters([]string{"c", `D:\`, "e:"})

	require.NoError(t, err)
	assert.Equal(t, []byte{'C', 'D', 'E'}, letters)
}

func TestWithHint(t *testing.T) {
	assert.NoError(t, withHint(nil))

	plain := errors.New("boom")
	assert.Equal(t, plain, withHint(plain))

	err := withHint(domain.NewSetupError(domain.StagePrepare, domain.ErrDirectoryNotWritable))
	assert.ErrorIs(t, err, domain.ErrDirectoryNotWritable)
	assert.Contains(t, err.Error(), elevationHint)
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/freewipe/internal/app"
	"github.com/runoshun/freewipe/internal/domain"
	"github.com/runoshun/freewipe/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv bundles a container wired to mocks and a temporary home directory.
type testEnv struct {
	container *app.Container
	fetcher   *testutil.MockFetcher
	extractor *testutil.MockExtractor
	executor  *testutil.MockExecutor
	pauser    *testutil.MockPauser
	home      string
}

// newTestEnv creates a container whose drive enumerator reports letters.
// Fetching and extraction are mocked; the config file lives in a temp dir.
func newTestEnv(t *testing.T, letters ...byte) *testEnv {
	t.Helper()

	home := t.TempDir()
	env := &testEnv{
		fetcher:   &testutil.MockFetcher{Content: []byte("PK")},
		extractor: &testutil.MockExtractor{Files: map[string]string{"sdelete.exe": "MZ"}},
		executor:  testutil.NewMockExecutor(),
		pauser:    &testutil.MockPauser{},
		home:      home,
	}
	env.container = app.NewWithDeps(app.Config{
		Home:       home,
		ConfigPath: filepath.Join(home, ".config", domain.AppDirName, domain.ConfigFileName),
	}, domain.NewDefaultConfig(), app.Deps{
		Drives:    testutil.NewMockEnumerator(letters...),
		Fetcher:   env.fetcher,
		Extractor: env.extractor,
		Executor:  env.executor,
		Pauser:    env.pauser,
	})
	return env
}

// install places sdelete.exe where the sweep looks for it.
func (e *testEnv) install(t *testing.T) {
	t.Helper()
	paths := e.container.ToolPaths()
	require.NoError(t, os.MkdirAll(paths.Dir, 0o750))
	require.NoError(t, os.WriteFile(paths.Executable, []byte("MZ"), 0o600))
}

// run executes the root command with args and returns stdout and stderr.
func (e *testEnv) run(args ...string) (string, string, error) {
	root := NewRootCommand(e.container, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader("\n"))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

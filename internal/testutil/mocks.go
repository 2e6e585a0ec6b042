// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/freewipe/internal/domain"
)

// MockClock is a test double for domain.Clock.
// Each call to Now advances the returned time by Step.
type MockClock struct {
	NowTime time.Time
	Step    time.Duration
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	t := m.NowTime
	m.NowTime = m.NowTime.Add(m.Step)
	return t
}

// MockEnumerator is a test double for domain.DriveEnumerator.
type MockEnumerator struct {
	Drives []domain.Drive
	Calls  int
}

// NewMockEnumerator returns an enumerator reporting the given letters.
func NewMockEnumerator(letters ...byte) *MockEnumerator {
	drives := make([]domain.Drive, 0, len(letters))
	for _, l := range letters {
		drives = append(drives, domain.NewDrive(l))
	}
	return &MockEnumerator{Drives: drives}
}

// Ensure MockEnumerator implements domain.DriveEnumerator interface.
var _ domain.DriveEnumerator = (*MockEnumerator)(nil)

// Enumerate returns the configured drives.
func (m *MockEnumerator) Enumerate() []domain.Drive {
	m.Calls++
	return m.Drives
}

// MockFetcher is a test double for domain.Fetcher.
// When Content is set it is written to dest.
// Fields are ordered to minimize memory padding.
type MockFetcher struct {
	Err     error
	URLs    []string
	Dests   []string
	Content []byte
	Calls   int
}

// Ensure MockFetcher implements domain.Fetcher interface.
var _ domain.Fetcher = (*MockFetcher)(nil)

// Fetch records the call and returns the configured error.
func (m *MockFetcher) Fetch(_ context.Context, url, dest string, progress domain.Progress) (int64, error) {
	m.Calls++
	m.URLs = append(m.URLs, url)
	m.Dests = append(m.Dests, dest)
	if m.Err != nil {
		return 0, m.Err
	}
	progress.Start(filepath.Base(dest), int64(len(m.Content)))
	defer progress.Finish()
	if m.Content != nil {
		if err := os.WriteFile(dest, m.Content, 0o600); err != nil {
			return 0, err
		}
		progress.Add(int64(len(m.Content)))
	}
	return int64(len(m.Content)), nil
}

// MockExtractor is a test double for domain.Extractor.
// Files maps member names to contents written under destDir.
type MockExtractor struct {
	Err   error
	Files map[string]string
	Calls int
}

// Ensure MockExtractor implements domain.Extractor interface.
var _ domain.Extractor = (*MockExtractor)(nil)

// Extract writes the configured files and returns the configured error.
func (m *MockExtractor) Extract(_ string, destDir string, _ domain.Progress) (*domain.ExtractResult, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	res := &domain.ExtractResult{}
	for name, content := range m.Files {
		path := filepath.Join(destDir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, path)
		res.TotalBytes += int64(len(content))
		res.Written += int64(len(content))
	}
	return res, nil
}

// MockExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockExecutor struct {
	Errs   map[string]error // Errors keyed by the command's last argument
	Before func(cmd *domain.ExecCommand)
	Output string
	Calls  []*domain.ExecCommand
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{Errs: make(map[string]error)}
}

// Ensure MockExecutor implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*MockExecutor)(nil)

// ExecuteWithContext records the command and writes Output to stdout.
func (m *MockExecutor) ExecuteWithContext(_ context.Context, cmd *domain.ExecCommand, stdout, _ io.Writer) error {
	m.Calls = append(m.Calls, cmd)
	if m.Before != nil {
		m.Before(cmd)
	}
	if m.Output != "" {
		_, _ = io.WriteString(stdout, m.Output)
	}
	if len(cmd.Args) == 0 {
		return nil
	}
	return m.Errs[cmd.Args[len(cmd.Args)-1]]
}

// MockProgress is a test double for domain.Progress.
type MockProgress struct {
	Labels   []string
	Totals   []int64
	Added    int64
	Finished int
}

// Ensure MockProgress implements domain.Progress interface.
var _ domain.Progress = (*MockProgress)(nil)

// Start records the transfer.
func (m *MockProgress) Start(label string, total int64) {
	m.Labels = append(m.Labels, label)
	m.Totals = append(m.Totals, total)
}

// Add accumulates n.
func (m *MockProgress) Add(n int64) {
	m.Added += n
}

// Finish counts finished transfers.
func (m *MockProgress) Finish() {
	m.Finished++
}

// MockPresenter is a test double for domain.Presenter.
type MockPresenter struct {
	Out       bytes.Buffer
	Steps     []string
	Warnings  []string
	Banners   []string
	DriveSets [][]domain.Drive
	Prog      MockProgress
}

// Ensure MockPresenter implements domain.Presenter interface.
var _ domain.Presenter = (*MockPresenter)(nil)

// Step records msg.
func (m *MockPresenter) Step(msg string) {
	m.Steps = append(m.Steps, msg)
}

// Warn records msg.
func (m *MockPresenter) Warn(msg string) {
	m.Warnings = append(m.Warnings, msg)
}

// Banner records msg.
func (m *MockPresenter) Banner(msg string) {
	m.Banners = append(m.Banners, msg)
}

// Drives records the drive table.
func (m *MockPresenter) Drives(drives []domain.Drive) {
	m.DriveSets = append(m.DriveSets, drives)
}

// Progress returns the shared MockProgress.
func (m *MockPresenter) Progress() domain.Progress {
	return &m.Prog
}

// Output returns the captured output buffer.
func (m *MockPresenter) Output() io.Writer {
	return &m.Out
}

// MockPauser is a test double for domain.Pauser.
type MockPauser struct {
	Err     error
	Prompts []string
}

// Ensure MockPauser implements domain.Pauser interface.
var _ domain.Pauser = (*MockPauser)(nil)

// Pause records the prompt.
func (m *MockPauser) Pause(_ context.Context, prompt string) error {
	m.Prompts = append(m.Prompts, prompt)
	return m.Err
}

// MockReportWriter is a test double for domain.ReportWriter.
type MockReportWriter struct {
	Err     error
	Reports []*domain.RunReport
}

// Ensure MockReportWriter implements domain.ReportWriter interface.
var _ domain.ReportWriter = (*MockReportWriter)(nil)

// Write records the report.
func (m *MockReportWriter) Write(report *domain.RunReport) error {
	m.Reports = append(m.Reports, report)
	return m.Err
}

// LogEntry is one call recorded by MockLogger.
type LogEntry struct {
	Level    string
	Scope    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level, scope, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Scope: scope, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(scope, category, msg string) { m.record("INFO", scope, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(scope, category, msg string) { m.record("DEBUG", scope, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(scope, category, msg string) { m.record("WARN", scope, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(scope, category, msg string) { m.record("ERROR", scope, category, msg) }

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr      error
	InitConfig   *domain.Config
	Info         domain.ConfigInfo
	InitCalled   bool
	InitOverride bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		Info: domain.ConfigInfo{
			Path:   "/home/test/.config/freewipe/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetGlobalConfigInfo returns the configured config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.Info
}

// InitGlobalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config, overwrite bool) (string, error) {
	m.InitCalled = true
	m.InitConfig = cfg
	m.InitOverride = overwrite
	if m.InitErr != nil {
		return "", m.InitErr
	}
	return m.Info.Path, nil
}

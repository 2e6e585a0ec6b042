package domain

import (
	"context"
	"io"
	"time"
)

// DriveEnumerator lists the drive roots present on the machine.
type DriveEnumerator interface {
	// Enumerate probes A..Z and returns the drives that exist, in letter order.
	Enumerate() []Drive
}

// Progress receives byte-level progress for one transfer.
type Progress interface {
	// Start begins a transfer. total < 0 means the size is unknown.
	Start(label string, total int64)

	// Add advances the transfer by n bytes.
	Add(n int64)

	// Finish ends the transfer.
	Finish()
}

// Fetcher downloads a URL to a file.
type Fetcher interface {
	// Fetch streams url into dest and returns the number of bytes written.
	Fetch(ctx context.Context, url, dest string, progress Progress) (int64, error)
}

// ExtractResult describes an extracted archive.
type ExtractResult struct {
	Files      []string // Extracted file paths, in archive order
	TotalBytes int64    // Sum of uncompressed member sizes
	Written    int64    // Bytes actually written to disk
}

// Extractor unpacks archives.
type Extractor interface {
	// Extract unpacks zipPath into destDir.
	Extract(zipPath, destDir string, progress Progress) (*ExtractResult, error)
}

// CommandExecutor executes external commands.
type CommandExecutor interface {
	// ExecuteWithContext runs a command and streams its output to stdout and stderr.
	ExecuteWithContext(ctx context.Context, cmd *ExecCommand, stdout, stderr io.Writer) error
}

// Presenter renders human-readable console output.
type Presenter interface {
	// Step prints a progress message for a sweep step.
	Step(msg string)

	// Warn prints a non-fatal problem.
	Warn(msg string)

	// Banner prints a framed message.
	Banner(msg string)

	// Drives prints the drive table.
	Drives(drives []Drive)

	// Progress returns a progress reporter for a transfer.
	Progress() Progress

	// Output returns the writer external commands stream to.
	Output() io.Writer
}

// Pauser blocks until the user acknowledges.
type Pauser interface {
	// Pause shows prompt and waits for a keypress.
	Pause(ctx context.Context, prompt string) error
}

// ReportWriter persists run reports.
type ReportWriter interface {
	// Write stores the report, replacing any previous one.
	Write(report *RunReport) error
}

// ReportReader loads the last persisted run report.
type ReportReader interface {
	// Read returns the last report, or an error wrapping fs.ErrNotExist if none exists.
	Read() (*RunReport, error)
}

// Logger writes operational log entries.
type Logger interface {
	// Info logs an info message. scope is a drive root or "" for global.
	Info(scope, category, msg string)

	// Debug logs a debug message.
	Debug(scope, category, msg string)

	// Warn logs a warning message.
	Warn(scope, category, msg string)

	// Error logs an error message.
	Error(scope, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration, falling back to defaults.
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the default template. It fails with
	// ErrConfigExists unless overwrite is true.
	InitGlobalConfig(cfg *Config, overwrite bool) (string, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

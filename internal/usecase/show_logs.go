package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/runoshun/freewipe/internal/domain"
)

// ShowLogsInput contains the parameters for showing the operation log.
type ShowLogsInput struct {
	Lines int // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing the operation log.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Log file content
}

// ShowLogs is the use case for viewing freewipe.log.
type ShowLogs struct {
	logPath string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(logPath string) *ShowLogs {
	return &ShowLogs{logPath: logPath}
}

// Execute reads and returns the log content.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	content, err := os.ReadFile(uc.logPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", domain.ErrNoLogs, uc.logPath)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	// If lines is specified, get only the last N lines
	result := strings.TrimSuffix(string(content), "\n")
	if in.Lines > 0 {
		lines := strings.Split(result, "\n")
		if len(lines) > in.Lines {
			lines = lines[len(lines)-in.Lines:]
		}
		result = strings.Join(lines, "\n")
	}

	return &ShowLogsOutput{
		LogPath: uc.logPath,
		Content: result,
	}, nil
}

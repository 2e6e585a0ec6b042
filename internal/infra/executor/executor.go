// Package executor runs external commands.
package executor

import (
	"context"
	"io"
	"os/exec"
	"time"

	"github.com/runoshun/freewipe/internal/domain"
)

// DefaultGracePeriod bounds how long a canceled command may take to clean up
// before it is killed. SDelete removes its zero-fill file on Ctrl-C, which can
// take a while on a large drive.
const DefaultGracePeriod = 30 * time.Second

// Client implements domain.CommandExecutor interface.
type Client struct {
	grace time.Duration
}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{grace: DefaultGracePeriod}
}

// WithGracePeriod sets how long a canceled command may run before it is killed.
func (c *Client) WithGracePeriod(d time.Duration) *Client {
	c.grace = d
	return c
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// ExecuteWithContext runs a command with context and custom stdout/stderr writers.
// It blocks until the process exits. Canceling ctx interrupts the process
// and kills it only if it is still running after the grace period.
func (c *Client) ExecuteWithContext(ctx context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr
	execCmd.Cancel = func() error {
		return interrupt(execCmd)
	}
	execCmd.WaitDelay = c.grace
	return execCmd.Run()
}

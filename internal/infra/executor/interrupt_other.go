//go:build !windows

package executor

import (
	"os"
	"os/exec"
)

// interrupt sends SIGINT so the child can run its cleanup.
func interrupt(cmd *exec.Cmd) error {
	return cmd.Process.Signal(os.Interrupt)
}

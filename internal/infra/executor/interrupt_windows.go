//go:build windows

package executor

import "os/exec"

// interrupt does nothing: the console already delivered CTRL_C_EVENT to the
// child, which shares our console. WaitDelay kills it if it does not exit.
func interrupt(_ *exec.Cmd) error {
	return nil
}

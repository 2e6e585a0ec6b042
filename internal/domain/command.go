package domain

import "strconv"

// ExecCommand represents a command to be executed.
type ExecCommand struct {
	Program string   // Program to execute
	Dir     string   // Working directory (empty = current)
	Args    []string // Command arguments
}

// String renders the command line for display.
func (c *ExecCommand) String() string {
	s := c.Program
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}

// WipeFreeSpaceCommand builds the SDelete invocation that zeroes the free
// space of a drive: -accepteula -p <passes> -s -z <root>.
func WipeFreeSpaceCommand(executable string, passes int, drive Drive) *ExecCommand {
	if passes < 1 {
		passes = 1
	}
	return &ExecCommand{
		Program: executable,
		Args: []string{
			"-accepteula",
			"-p", strconv.Itoa(passes),
			"-s",
			"-z",
			drive.Root,
		},
	}
}

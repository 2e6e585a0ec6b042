package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeFreeSpaceCommand(t *testing.T) {
	cmd := WipeFreeSpaceCommand(`C:\Users\me\SDelete\sdelete.exe`, 1, NewDrive('D'))

	assert.Equal(t, `C:\Users\me\SDelete\sdelete.exe`, cmd.Program)
	assert.Equal(t, []string{"-accepteula", "-p", "1", "-s", "-z", `D:\`}, cmd.Args)
	assert.Empty(t, cmd.Dir)
}

func TestWipeFreeSpaceCommand_Passes(t *testing.T) {
	assert.Equal(t, "3", WipeFreeSpaceCommand("sdelete.exe", 3, NewDrive('C')).Args[2])
	// Non-positive pass counts fall back to a single pass
	assert.Equal(t, "1", WipeFreeSpaceCommand("sdelete.exe", 0, NewDrive('C')).Args[2])
}

func TestExecCommand_String(t *testing.T) {
	cmd := WipeFreeSpaceCommand("sdelete.exe", 1, NewDrive('C'))
	assert.Equal(t, `sdelete.exe -accepteula -p 1 -s -z C:\`, cmd.String())
}

package domain

import (
	"errors"
	"fmt"
	"io/fs"
)

// Domain errors.
var (
	ErrConfigExists         = errors.New("config file already exists")
	ErrBadArchive           = errors.New("not a valid zip archive")
	ErrUnsafeArchivePath    = errors.New("archive entry escapes destination directory")
	ErrExecutableMissing    = errors.New("sdelete executable not found after extraction")
	ErrUnexpectedStatus     = errors.New("unexpected HTTP status")
	ErrDirectoryNotWritable = errors.New("directory is not writable")
	ErrInvalidPasses        = errors.New("passes must be at least 1")
	ErrInvalidDriveLetter   = errors.New("invalid drive letter")
	ErrNoReport             = errors.New("no run report found")
	ErrNoLogs               = errors.New("no log file found")
)

// SetupStage names the step of tool preparation that failed.
type SetupStage string

// Setup stages, in the order PrepareTool runs them.
const (
	StagePrepare  SetupStage = "prepare"
	StageDownload SetupStage = "download"
	StageExtract  SetupStage = "extract"
	StageVerify   SetupStage = "verify"
	StageCleanup  SetupStage = "cleanup"
)

// SetupError is the single error type reported for failures while preparing
// the SDelete tool. Fatal errors abort the run before any drive is touched.
type SetupError struct {
	Err   error
	Stage SetupStage
	Fatal bool
}

// NewSetupError wraps err for the given stage.
// Every stage except cleanup is fatal.
func NewSetupError(stage SetupStage, err error) *SetupError {
	return &SetupError{
		Stage: stage,
		Err:   err,
		Fatal: stage != StageCleanup,
	}
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// IsFatalSetup reports whether err carries a fatal SetupError.
func IsFatalSetup(err error) bool {
	var se *SetupError
	return errors.As(err, &se) && se.Fatal
}

// IsPermission reports whether err was caused by a permission denial.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, ErrDirectoryNotWritable)
}

package usecase

import (
	"context"

	"github.com/runoshun/freewipe/internal/domain"
)

// ListDrivesInput contains the input parameters for ListDrives.
type ListDrivesInput struct {
	Letters []byte // Restrict to these letters (empty = all)
}

// ListDrivesOutput contains the output from ListDrives.
type ListDrivesOutput struct {
	Drives  []domain.Drive // Present drives, in letter order
	Missing []byte         // Requested letters that are not present
}

// ListDrives enumerates the drives a sweep would visit.
type ListDrives struct {
	drives domain.DriveEnumerator
}

// NewListDrives creates a new ListDrives use case.
func NewListDrives(drives domain.DriveEnumerator) *ListDrives {
	return &ListDrives{drives: drives}
}

// Execute enumerates drives and applies the letter selection.
func (uc *ListDrives) Execute(_ context.Context, in ListDrivesInput) (*ListDrivesOutput, error) {
	selected, missing := domain.SelectDrives(uc.drives.Enumerate(), in.Letters)
	return &ListDrivesOutput{
		Drives:  selected,
		Missing: missing,
	}, nil
}

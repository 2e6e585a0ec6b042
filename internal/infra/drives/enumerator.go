// Package drives enumerates the drive letters present on the machine.
package drives

import (
	"github.com/runoshun/freewipe/internal/domain"
)

// Ensure Enumerator implements domain.DriveEnumerator interface.
var _ domain.DriveEnumerator = (*Enumerator)(nil)

// ExistsFunc reports whether the root of a drive letter exists.
type ExistsFunc func(letter byte) bool

// DescribeFunc fills informational metadata (kind, capacity) for a drive.
type DescribeFunc func(d *domain.Drive)

// Enumerator probes drive letters A..Z.
type Enumerator struct {
	exists   ExistsFunc
	describe DescribeFunc
}

// NewEnumerator creates an Enumerator using the platform probe.
func NewEnumerator() *Enumerator {
	return &Enumerator{
		exists:   platformExists(),
		describe: describeDrive,
	}
}

// NewEnumeratorWithProbe creates an Enumerator with a custom existence probe.
// Drives found this way carry no metadata.
func NewEnumeratorWithProbe(exists ExistsFunc) *Enumerator {
	return &Enumerator{exists: exists}
}

// Enumerate returns every drive whose root exists, in letter order.
// It never returns nil.
func (e *Enumerator) Enumerate() []domain.Drive {
	drives := make([]domain.Drive, 0, 4)
	for i := 0; i < len(domain.DriveLetters); i++ {
		letter := domain.DriveLetters[i]
		if !e.exists(letter) {
			continue
		}
		d := domain.NewDrive(letter)
		if e.describe != nil {
			e.describe(&d)
		}
		drives = append(drives, d)
	}
	return drives
}

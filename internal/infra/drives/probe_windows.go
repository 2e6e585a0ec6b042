//go:build windows

package drives

import (
	"github.com/runoshun/freewipe/internal/domain"
	"golang.org/x/sys/windows"
)

// platformExists skips letters missing from the logical drive bitmask
// (bit 0 is A:, bit 25 is Z:) and stats the rest, so a drive letter with no
// media mounted is not reported.
func platformExists() ExistsFunc {
	return func(letter byte) bool {
		mask, err := windows.GetLogicalDrives()
		if err == nil && mask&(1<<uint(letter-'A')) == 0 {
			return false
		}
		return statExists(letter)
	}
}

func describeDrive(d *domain.Drive) {
	root, err := windows.UTF16PtrFromString(d.Root)
	if err != nil {
		return
	}

	d.Kind = driveKind(windows.GetDriveType(root))

	// Fails for removable and optical drives with no media; capacity stays unknown.
	var free, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(root, &free, &total, &totalFree); err != nil {
		return
	}
	d.TotalBytes = total
	d.FreeBytes = totalFree
	d.HasSpace = true
}

func driveKind(t uint32) domain.DriveKind {
	switch t {
	case windows.DRIVE_FIXED:
		return domain.DriveKindFixed
	case windows.DRIVE_REMOVABLE:
		return domain.DriveKindRemovable
	case windows.DRIVE_REMOTE:
		return domain.DriveKindNetwork
	case windows.DRIVE_CDROM:
		return domain.DriveKindOptical
	case windows.DRIVE_RAMDISK:
		return domain.DriveKindRAMDisk
	default:
		return domain.DriveKindUnknown
	}
}

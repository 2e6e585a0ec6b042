package domain

import (
	"fmt"
	"strings"
)

// DriveLetters is the probe order used by drive enumeration.
const DriveLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DriveKind describes what the OS reports a drive to be.
// It is informational only and never used to filter drives.
type DriveKind string

// Drive kinds.
const (
	DriveKindUnknown   DriveKind = ""
	DriveKindFixed     DriveKind = "fixed"
	DriveKindRemovable DriveKind = "removable"
	DriveKindNetwork   DriveKind = "network"
	DriveKindOptical   DriveKind = "optical"
	DriveKindRAMDisk   DriveKind = "ramdisk"
)

// Drive is a filesystem root that existed when drives were enumerated.
// Fields are ordered to minimize memory padding.
type Drive struct {
	Root       string    // Root path, e.g. `C:\`
	Kind       DriveKind // Reported drive kind (may be unknown)
	TotalBytes uint64    // Total capacity, 0 if unknown
	FreeBytes  uint64    // Free bytes, 0 if unknown
	Letter     byte      // Uppercase drive letter
	HasSpace   bool      // True if TotalBytes/FreeBytes were reported
}

// DriveRoot returns the root path for a drive letter, e.g. 'C' -> `C:\`.
func DriveRoot(letter byte) string {
	return string(letter) + `:\`
}

// NewDrive creates a Drive for the given letter with no metadata.
func NewDrive(letter byte) Drive {
	return Drive{Letter: letter, Root: DriveRoot(letter)}
}

// ParseDriveLetter accepts "c", "C", "C:" or `C:\` and returns the uppercase letter.
func ParseDriveLetter(s string) (byte, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	t = strings.TrimSuffix(t, `\`)
	t = strings.TrimSuffix(t, ":")
	if len(t) != 1 || t[0] < 'A' || t[0] > 'Z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDriveLetter, s)
	}
	return t[0], nil
}

// SelectDrives keeps the drives whose letter appears in letters, preserving
// enumeration order. An empty selection keeps every drive. The letters that
// matched no drive are returned as missing.
func SelectDrives(drives []Drive, letters []byte) (selected []Drive, missing []byte) {
	if len(letters) == 0 {
		return drives, nil
	}

	want := make(map[byte]bool, len(letters))
	for _, l := range letters {
		want[l] = true
	}

	selected = make([]Drive, 0, len(letters))
	seen := make(map[byte]bool, len(letters))
	for _, d := range drives {
		if want[d.Letter] {
			selected = append(selected, d)
			seen[d.Letter] = true
		}
	}
	for _, l := range letters {
		if !seen[l] {
			missing = append(missing, l)
			seen[l] = true
		}
	}
	return selected, missing
}

package drives

import (
	"os"

	"github.com/runoshun/freewipe/internal/domain"
)

// statExists probes a drive root with os.Stat.
func statExists(letter byte) bool {
	_, err := os.Stat(domain.DriveRoot(letter))
	return err == nil
}

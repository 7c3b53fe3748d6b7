//go:build !linux && !darwin && !windows

package property

import (
	"errors"
	"os"
)

func fileTimes(string, os.FileInfo) (created, accessed Timestamp) {
	return unavailable(errors.ErrUnsupported), unavailable(errors.ErrUnsupported)
}

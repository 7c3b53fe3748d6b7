//go:build windows

package property

import (
	"errors"
	"os"
	"syscall"
	"time"
)

func fileTimes(_ string, info os.FileInfo) (created, accessed Timestamp) {
	d, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return unavailable(errors.ErrUnsupported), unavailable(errors.ErrUnsupported)
	}
	return available(time.Unix(0, d.CreationTime.Nanoseconds())),
		available(time.Unix(0, d.LastAccessTime.Nanoseconds()))
}

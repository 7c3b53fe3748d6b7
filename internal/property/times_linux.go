//go:build linux

package property

import (
	"errors"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

func fileTimes(path string, info os.FileInfo) (created, accessed Timestamp) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_ATIME|unix.STATX_BTIME, &stx)
	if err != nil {
		// Kernels before 4.11 have no statx and no birth time.
		created = unavailable(err)
		if st, ok := info.Sys().(*syscall.Stat_t); ok {
			accessed = available(time.Unix(st.Atim.Unix()))
		} else {
			accessed = unavailable(err)
		}
		return created, accessed
	}

	if stx.Mask&unix.STATX_BTIME != 0 {
		created = available(statxTime(stx.Btime))
	} else {
		created = unavailable(errors.ErrUnsupported)
	}
	if stx.Mask&unix.STATX_ATIME != 0 {
		accessed = available(statxTime(stx.Atime))
	} else {
		accessed = unavailable(errors.ErrUnsupported)
	}
	return created, accessed
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}

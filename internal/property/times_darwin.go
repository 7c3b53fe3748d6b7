//go:build darwin

package property

import (
	"errors"
	"os"
	"syscall"
	"time"
)

func fileTimes(_ string, info os.FileInfo) (created, accessed Timestamp) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return unavailable(errors.ErrUnsupported), unavailable(errors.ErrUnsupported)
	}
	return available(time.Unix(st.Birthtimespec.Unix())), available(time.Unix(st.Atimespec.Unix()))
}

//go:build darwin

package source

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the file's birth time, which macOS exposes
// directly in its stat structure.
func creationTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Birthtimespec.Sec), int64(st.Birthtimespec.Nsec))
	}
	return info.ModTime()
}

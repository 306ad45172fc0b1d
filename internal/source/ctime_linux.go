//go:build linux

package source

import (
	"os"
	"syscall"
	"time"
)

// creationTime falls back to the metadata-change time; Linux does not
// expose a birth time through the portable stat structure.
func creationTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	}
	return info.ModTime()
}

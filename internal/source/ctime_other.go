//go:build !darwin && !linux && !windows

package source

import (
	"os"
	"time"
)

// creationTime falls back to the modification time on platforms where we
// do not know how to read anything better from the stat structure.
func creationTime(info os.FileInfo) time.Time {
	return info.ModTime()
}

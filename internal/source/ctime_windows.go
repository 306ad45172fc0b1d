//go:build windows

package source

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the file's creation time from the Win32 attribute
// data.
func creationTime(info os.FileInfo) time.Time {
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, d.CreationTime.Nanoseconds())
	}
	return info.ModTime()
}

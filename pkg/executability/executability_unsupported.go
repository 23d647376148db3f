//go:build !unix && !windows

package executability

import (
	"os"
)

// isExecutable implements the executability check for platforms with no
// meaningful notion of executable permissions (plan9, js, wasip1, and any
// future non-POSIX targets). It degrades to an existence
// check: any regular file at the path is treated as executable.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return infoIsExecutable(info)
}

// infoIsExecutable implements the metadata-level executability check for
// platforms with no meaningful notion of executable permissions.
func infoIsExecutable(info os.FileInfo) bool {
	return info.Mode().IsRegular()
}

//go:build unix

package executability

import (
	"os"
)

// isExecutable implements the executability check for POSIX systems. A path
// is executable if it resolves (following symbolic links) to a regular file
// with at least one execute permission bit set.
func isExecutable(path string) bool {
	// Grab file metadata, following symbolic links. Any failure here (a
	// nonexistent path, a broken link, an unreadable parent directory) means
	// the path can't be executed, so collapse it to false.
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	// Check the metadata.
	return infoIsExecutable(info)
}

// infoIsExecutable implements the metadata-level executability check for
// POSIX systems. Only regular files are executable, and no distinction is
// made between the owner, group, and others execute bits.
func infoIsExecutable(info os.FileInfo) bool {
	return info.Mode().IsRegular() && info.Mode()&0111 != 0
}

package executability

import (
	"os"
)

// IsExecutable returns true if there is a file at path and it is executable
// on the host platform. It returns false in all other cases, including when
// the file doesn't exist, when its metadata can't be read, and when path
// points to a directory. Symbolic links are followed, so a link to an
// executable regular file reports true while a broken link reports false.
// The result reflects the state of the filesystem (and, on Windows, the
// process environment) at the time of the call; nothing is cached between
// calls, so the function is safe for concurrent use.
func IsExecutable(path string) bool {
	return isExecutable(path)
}

// Path is a filesystem path that can report its own executability. It exists
// so that executability can be queried as a capability of the path itself
// rather than through a free function; the two forms are backed by the same
// implementation and never diverge.
type Path string

// IsExecutable returns true if there is a file at p and it is executable. It
// is exactly equivalent to calling IsExecutable(string(p)).
func (p Path) IsExecutable() bool {
	return IsExecutable(string(p))
}

// InfoIsExecutable returns true if the file metadata in info describes an
// executable regular file. It allows callers that have already performed a
// metadata query to check executability without a second stat. On platforms
// where executability can't be determined from metadata and a name alone
// (e.g. Windows paths with no allow-listed extension, where a binary type
// query against the full path would be required), it returns false.
func InfoIsExecutable(info os.FileInfo) bool {
	return infoIsExecutable(info)
}

//go:build unix

package executability

import (
	"os"

	"github.com/pkg/errors"

	"golang.org/x/sys/unix"
)

// Access describes the outcome of a user-specific executability query.
type Access uint8

const (
	// AccessNotFound indicates that no file exists at the queried path.
	AccessNotFound Access = iota
	// AccessDenied indicates that a file exists at the queried path but the
	// invoking user doesn't have execute rights on it.
	AccessDenied
	// AccessPermitted indicates that the invoking user has execute rights on
	// the file at the queried path.
	AccessPermitted
)

// QueryUserExecutable determines whether the invoking process' effective user
// specifically has execute rights on the file at path, as opposed to
// IsExecutable's check for any execute bit regardless of owner. The relevant
// permission bit is selected by comparing the effective user ID against the
// file's owning user (owner bit), then the effective and supplementary group
// IDs against the file's owning group (group bit), falling back to the others
// bit. A root effective user is permitted whenever any execute bit is set.
// Symbolic links are followed. A nonexistent path isn't an error; it reports
// AccessNotFound. Errors are reserved for metadata or group enumeration
// failures, and the Access value accompanying an error is meaningless.
func QueryUserExecutable(path string) (Access, error) {
	// Grab raw file metadata, following symbolic links. A missing file (or a
	// broken link, which resolves to the same condition) is a definitive
	// answer rather than a failure.
	var metadata unix.Stat_t
	if err := unix.Stat(path, &metadata); err != nil {
		if err == unix.ENOENT {
			return AccessNotFound, nil
		}
		return AccessDenied, errors.Wrap(err, "unable to query file metadata")
	}

	// Only regular files can be executed.
	if metadata.Mode&unix.S_IFMT != unix.S_IFREG {
		return AccessDenied, nil
	}

	// Root bypasses permission checks so long as some execute bit is set.
	euid := os.Geteuid()
	if euid == 0 {
		if metadata.Mode&0111 != 0 {
			return AccessPermitted, nil
		}
		return AccessDenied, nil
	}

	// If the effective user owns the file, the owner bit is authoritative.
	if uint32(euid) == metadata.Uid {
		if metadata.Mode&0100 != 0 {
			return AccessPermitted, nil
		}
		return AccessDenied, nil
	}

	// If the effective user belongs to the file's owning group, the group bit
	// is authoritative.
	if member, err := isGroupMember(metadata.Gid); err != nil {
		return AccessDenied, errors.Wrap(err, "unable to enumerate group memberships")
	} else if member {
		if metadata.Mode&0010 != 0 {
			return AccessPermitted, nil
		}
		return AccessDenied, nil
	}

	// Otherwise the others bit decides.
	if metadata.Mode&0001 != 0 {
		return AccessPermitted, nil
	}
	return AccessDenied, nil
}

// isGroupMember checks whether the invoking process' effective or
// supplementary group IDs include gid.
func isGroupMember(gid uint32) (bool, error) {
	if uint32(os.Getegid()) == gid {
		return true, nil
	}
	groups, err := os.Getgroups()
	if err != nil {
		return false, err
	}
	for _, group := range groups {
		if uint32(group) == gid {
			return true, nil
		}
	}
	return false, nil
}

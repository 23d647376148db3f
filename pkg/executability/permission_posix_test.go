//go:build unix

package executability

import (
	"os"
	"path/filepath"
	"testing"
)

func TestQueryUserExecutableNotFound(t *testing.T) {
	access, err := QueryUserExecutable(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatal("unable to query user executability:", err)
	}
	if access != AccessNotFound {
		t.Error("nonexistent path didn't report as not found")
	}
}

func TestQueryUserExecutableDirectory(t *testing.T) {
	access, err := QueryUserExecutable(t.TempDir())
	if err != nil {
		t.Fatal("unable to query user executability:", err)
	}
	if access != AccessDenied {
		t.Error("directory didn't report as denied")
	}
}

func TestQueryUserExecutablePermitted(t *testing.T) {
	// The test process owns the file, so the owner bit governs. If the
	// process is running as root, the root short-circuit yields the same
	// answer.
	path := createTestFile(t, "i_am_executable", 0700)
	access, err := QueryUserExecutable(path)
	if err != nil {
		t.Fatal("unable to query user executability:", err)
	}
	if access != AccessPermitted {
		t.Error("owner-executable file didn't report as permitted")
	}
}

func TestQueryUserExecutableDenied(t *testing.T) {
	// No execute bits at all, so even a root effective user is denied.
	path := createTestFile(t, "i_am_not_executable", 0644)
	access, err := QueryUserExecutable(path)
	if err != nil {
		t.Fatal("unable to query user executability:", err)
	}
	if access != AccessDenied {
		t.Error("non-executable file didn't report as denied")
	}
}

func TestQueryUserExecutableBrokenSymlink(t *testing.T) {
	// A broken symbolic link resolves to a missing file.
	directory := t.TempDir()
	link := filepath.Join(directory, "i_am_broken")
	if err := os.Symlink(filepath.Join(directory, "missing"), link); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}
	access, err := QueryUserExecutable(link)
	if err != nil {
		t.Fatal("unable to query user executability:", err)
	}
	if access != AccessNotFound {
		t.Error("broken symbolic link didn't report as not found")
	}
}

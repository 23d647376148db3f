package executability

import (
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Binary subtypes reported by GetBinaryTypeW. These mirror the Win32 SCS_*
// constants, all of which describe something Windows knows how to invoke.
const (
	scs32BitBinary uint32 = 0
	scsDOSBinary   uint32 = 1
	scsWOWBinary   uint32 = 2
	scsPIFBinary   uint32 = 3
	scsPOSIXBinary uint32 = 4
	scsOS216Binary uint32 = 5
	scs64BitBinary uint32 = 6
)

var (
	kernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procGetBinaryTypeW = kernel32.NewProc("GetBinaryTypeW")
)

// isExecutable implements the executability check for Windows. A path is
// executable if it points to an existing regular file and either its
// extension appears in the PATHEXT allow-list or Windows classifies the file
// as a recognized binary type.
func isExecutable(path string) bool {
	// Grab file metadata, following symbolic links. Existence is required
	// even when the extension alone would match the allow-list, and
	// directories are never executable.
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	// Consult the PATHEXT allow-list. If the path carries an extension, the
	// allow-list is authoritative: a miss means not executable, with no
	// fallthrough to the binary type query. Extensionless paths (and an
	// absent or empty PATHEXT) defer to the query below. PATHEXT is read on
	// every call rather than snapshotted so that the result tracks the
	// current environment.
	if pathext := os.Getenv("PATHEXT"); pathext != "" {
		if extension, ok := pathExtension(path); ok {
			for _, allowed := range parseExtensionList(pathext) {
				if strings.EqualFold(extension, allowed) {
					return true
				}
			}
			return false
		}
	}

	// Ask Windows to classify the file's binary type.
	return binaryTypeIsExecutable(path)
}

// infoIsExecutable implements the metadata-level executability check for
// Windows. With no path available for a binary type query, only the PATHEXT
// allow-list can be consulted, so extensionless names conservatively report
// false.
func infoIsExecutable(info os.FileInfo) bool {
	if !info.Mode().IsRegular() {
		return false
	}
	pathext := os.Getenv("PATHEXT")
	if pathext == "" {
		return false
	}
	extension, ok := pathExtension(info.Name())
	if !ok {
		return false
	}
	for _, allowed := range parseExtensionList(pathext) {
		if strings.EqualFold(extension, allowed) {
			return true
		}
	}
	return false
}

// binaryTypeIsExecutable queries Windows for the binary type of the file at
// path and reports whether it's a recognized executable subtype. Any failure
// (including an unparseable path) reports false.
func binaryTypeIsExecutable(path string) bool {
	// Convert the path to UTF-16.
	path16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}

	// Perform the query. A zero result indicates failure, most commonly
	// because the file isn't a binary at all.
	var binaryType uint32
	result, _, _ := procGetBinaryTypeW.Call(
		uintptr(unsafe.Pointer(path16)),
		uintptr(unsafe.Pointer(&binaryType)),
	)
	if result == 0 {
		return false
	}

	// Check for a recognized subtype.
	switch binaryType {
	case scs32BitBinary, scsDOSBinary, scsWOWBinary, scsPIFBinary,
		scsPOSIXBinary, scsOS216Binary, scs64BitBinary:
		return true
	}
	return false
}

package executability

import (
	"path/filepath"
	"strings"
)

// parseExtensionList parses a PATHEXT-style extension allow-list: entries
// separated by semicolons, each conventionally prefixed with a dot (e.g.
// ".COM;.EXE;.BAT;.CMD"). Entries of length one or less are discarded, which
// covers empty tokens from stray or trailing separators as well as bare dots.
// The leading dot is stripped from each surviving entry. Order and case are
// preserved; matching against the result is the caller's concern.
//
// This parsing is platform-agnostic by design, even though the allow-list
// convention is a Windows one, so that it can be exercised on any system.
func parseExtensionList(value string) []string {
	entries := strings.Split(value, ";")
	extensions := make([]string, 0, len(entries))
	for _, entry := range entries {
		if len(entry) <= 1 {
			continue
		}
		extensions = append(extensions, strings.TrimPrefix(entry, "."))
	}
	return extensions
}

// pathExtension extracts the extension of the final segment of path: the
// portion after the last dot, which may be empty for names with a trailing
// dot. The second return value indicates whether an extension is present at
// all. Names without an embedded dot have no extension, and neither do
// dotfiles (a dot in the leading position doesn't begin an extension).
func pathExtension(path string) (string, bool) {
	base := filepath.Base(path)
	index := strings.LastIndexByte(base, '.')
	if index <= 0 {
		return "", false
	}
	return base[index+1:], true
}

package pathing

import (
	"path/filepath"
	"strings"
)

// CleanPath removes any trailing slashes from path, keeping a lone root slash.
// Unlike [filepath.Clean] no other components are rewritten.
func CleanPath(path string) string {
	trimmed := strings.TrimRight(path, string(filepath.Separator))
	if trimmed == "" && path != "" {
		return string(filepath.Separator)
	}

	return trimmed
}

// BaseName returns the last element of path, with trailing slashes stripped
// beforehand, so "a/b/" yields "b".
func BaseName(path string) string {
	return filepath.Base(CleanPath(path))
}

// JoinPath appends name to dir with a single separator. Unlike [filepath.Join]
// the dir is not cleaned, so ".." after a symbolic link still resolves
// through the link as it did when dir was checked.
func JoinPath(dir string, name string) string {
	dir = CleanPath(dir)
	if dir == string(filepath.Separator) {
		return dir + name
	}

	return dir + string(filepath.Separator) + name
}

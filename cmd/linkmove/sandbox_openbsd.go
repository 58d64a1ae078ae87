//go:build openbsd

package main

import "golang.org/x/sys/unix"

// sandbox restricts the process to file access, attribute and ownership
// changes.
func sandbox() error {
	return unix.Pledge("stdio rpath wpath cpath fattr chown", "")
}

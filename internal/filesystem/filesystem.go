// Package filesystem implements the read-only filesystem queries needed to
// plan and carry out a relocation: non-following metadata retrieval and free
// space checks.
package filesystem

import "golang.org/x/sys/unix"

type osProvider interface {
	Readlink(name string) (string, error)
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
	Statfs(path string, buf *unix.Statfs_t) error
}

// Handler is the principal implementation for the filesystem services.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}

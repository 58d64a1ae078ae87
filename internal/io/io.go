// Package io implements the relocation of filesystem elements: the recursive
// move (falling back to copying across devices), the attribute-preserving
// file copy and the symbolic link left behind at every original location.
package io

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sjmulder/linkmove/internal/queue"
	"github.com/sjmulder/linkmove/internal/schema"
	"golang.org/x/sys/unix"
)

type fsProvider interface {
	GetMetadata(path string) (*schema.Metadata, error)
	HasEnoughFreeSpace(path string, fileSize uint64) (bool, error)
}

type osProvider interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Chmod(path string, mode uint32) error
	Chown(path string, uid, gid int) error
	Lchown(path string, uid, gid int) error
	Mkdir(path string, mode uint32) error
	Rmdir(path string) error
	Symlink(oldpath, newpath string) error
	Unlink(path string) error
	UtimesNano(path string, times []unix.Timespec) error
}

// Options holds the caller's configuration of a [Handler].
type Options struct {
	// Verbose enables printing every destination path to Out, once per
	// relocation and before it is moved.
	Verbose bool

	// Out receives the verbose output, it defaults to [os.Stderr].
	Out io.Writer
}

// Handler is the principal implementation for the IO services.
type Handler struct {
	fsHandler   fsProvider
	osHandler   osProvider
	unixHandler unixProvider
	verbose     bool
	out         io.Writer
}

// NewHandler returns a pointer to a new IO [Handler].
func NewHandler(fsHandler fsProvider, osHandler osProvider, unixHandler unixProvider, opts Options) *Handler {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	return &Handler{
		fsHandler:   fsHandler,
		osHandler:   osHandler,
		unixHandler: unixHandler,
		verbose:     opts.Verbose,
		out:         out,
	}
}

// ProcessQueue relocates all [schema.Relocation] of a queue in their order.
// Each relocation is moved and then linked back before the next one is
// started. The first failure aborts the processing and is returned, leaving
// all earlier relocations completed and all later ones untouched.
func (i *Handler) ProcessQueue(ctx context.Context, q *queue.Queue[*schema.Relocation]) error {
	if err := q.DequeueAndProcess(ctx, i.processRelocation); err != nil {
		return fmt.Errorf("(io) %w", err)
	}

	return nil
}

func (i *Handler) processRelocation(r *schema.Relocation) error {
	if i.verbose {
		fmt.Fprintln(i.out, r.DestPath)
	}

	if err := i.ensureDistinct(r.SourcePath, r.DestPath); err != nil {
		return err
	}

	if err := i.Move(r.SourcePath, r.DestPath); err != nil {
		return err
	}

	slog.Debug("Moved:",
		"path", r.DestPath,
		"job", r.SourcePath,
	)

	if err := i.LinkBack(r.SourcePath, r.DestPath); err != nil {
		return err
	}

	slog.Debug("Linked:",
		"path", r.SourcePath,
		"target", r.DestPath,
	)

	return nil
}

// ensureDistinct fails if src and dst already resolve to the same file, as is
// the case when src is the link left behind by an earlier run to dst. Moving
// src onto dst would replace the content with a link to itself.
func (i *Handler) ensureDistinct(src string, dst string) error {
	dstInfo, err := i.osHandler.Stat(dst)
	if err != nil {
		return nil //nolint:nilerr
	}

	srcInfo, err := i.osHandler.Stat(src)
	if err != nil {
		return nil //nolint:nilerr
	}

	if os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("(io-distinct) %s -> %s: %w", src, dst, ErrSameFile)
	}

	return nil
}

package io

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/sjmulder/linkmove/internal/schema"
	"golang.org/x/sys/unix"
)

// Move relocates the element at src to the exact path dst, whose parent
// directory must exist. A rename is attempted first. Only when that fails
// because src and dst are on different devices, the element is recreated at
// dst and removed from src: directories are moved entry by entry (depth
// first, all entries before the directory itself is removed), regular files
// are copied and symbolic links are recreated rather than followed.
func (i *Handler) Move(src string, dst string) error {
	err := i.osHandler.Rename(src, dst)
	if err == nil {
		return nil
	}

	if !errors.Is(err, unix.EXDEV) {
		return fmt.Errorf("(io-move) failed to rename: %w", err)
	}

	metadata, err := i.fsHandler.GetMetadata(src)
	if err != nil {
		return fmt.Errorf("(io-move) %w", err)
	}

	switch {
	case metadata.IsDir:
		return i.moveDirectory(src, dst, metadata)

	case metadata.IsRegular:
		return i.moveFile(src, dst, metadata)

	case metadata.IsSymlink:
		return i.moveSymlink(src, dst, metadata)

	default:
		return fmt.Errorf("(io-move) %s: %w", src, ErrUnsupportedType)
	}
}

// moveDirectory recreates the directory src at dst and moves all its entries
// there, removing src once it is empty. The directory is created with owner
// access so that the entries can be moved into it, the exact permissions are
// applied after the last entry.
func (i *Handler) moveDirectory(src string, dst string, metadata *schema.Metadata) error {
	if err := i.unixHandler.Mkdir(dst, metadata.Perms|ownerAccess); err != nil {
		return fmt.Errorf("(io-movedir) failed to mkdir %s: %w", dst, err)
	}

	i.ensureOwnership(dst, metadata)

	entries, err := i.osHandler.ReadDir(src)
	if err != nil {
		return fmt.Errorf("(io-movedir) failed to readdir: %w", err)
	}

	for _, entry := range entries {
		if err := i.Move(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}

	if err := i.ensurePermissions(dst, metadata); err != nil {
		return fmt.Errorf("(io-movedir) %w", err)
	}

	i.ensureTimestamps(dst, metadata)

	if err := i.unixHandler.Rmdir(src); err != nil {
		return fmt.Errorf("(io-movedir) failed to rmdir %s: %w", src, err)
	}

	slog.Debug("Moved directory across devices:",
		"path", dst,
		"job", src,
		"entries", len(entries),
	)

	return nil
}

// moveFile copies the regular file src to dst and removes src afterwards.
func (i *Handler) moveFile(src string, dst string, metadata *schema.Metadata) error {
	enoughSpace, err := i.fsHandler.HasEnoughFreeSpace(filepath.Dir(dst), metadata.Size)
	if err != nil {
		return fmt.Errorf("(io-movefile) failed to check enough space: %w", err)
	}
	if !enoughSpace {
		return fmt.Errorf("(io-movefile) %w: %s (%s)", ErrNotEnoughSpace, dst, humanize.IBytes(metadata.Size))
	}

	if err := i.copyFile(src, dst, metadata); err != nil {
		return fmt.Errorf("(io-movefile) %w", err)
	}

	if err := i.unixHandler.Unlink(src); err != nil {
		return fmt.Errorf("(io-movefile) failed to unlink %s: %w", src, err)
	}

	slog.Debug("Copied file across devices:",
		"path", dst,
		"job", src,
		"size", humanize.IBytes(metadata.Size),
	)

	return nil
}

// moveSymlink recreates the symbolic link src at dst, pointing to the same
// target, and removes src afterwards. The link target is never followed.
func (i *Handler) moveSymlink(src string, dst string, metadata *schema.Metadata) error {
	if err := i.unixHandler.Symlink(metadata.SymlinkTo, dst); err != nil {
		return fmt.Errorf("(io-movesyml) failed to symlink %s: %w", dst, err)
	}

	i.ensureLinkOwnership(dst, metadata)

	if err := i.unixHandler.Unlink(src); err != nil {
		return fmt.Errorf("(io-movesyml) failed to unlink %s: %w", src, err)
	}

	return nil
}

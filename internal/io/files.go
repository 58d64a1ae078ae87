package io

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/sjmulder/linkmove/internal/schema"
	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"
)

// copyFile copies the regular file src to dst, which must not exist yet. The
// content and permissions are always copied (or the copy fails), ownership
// and timestamps are copied insofar possible. A symbolic link at src is
// refused rather than followed. A partially written dst is removed again.
func (i *Handler) copyFile(src string, dst string, metadata *schema.Metadata) error {
	var copyComplete bool

	srcFile, err := i.osHandler.OpenFile(src, os.O_RDONLY|unix.O_NOFOLLOW, 0)
	if err != nil {
		return fmt.Errorf("(io-copy) failed to open src: %w", err)
	}

	dstFile, err := i.osHandler.OpenFile(dst, os.O_RDWR|os.O_CREATE|os.O_EXCL, os.FileMode(metadata.Perms)&fs.ModePerm)
	if err != nil {
		srcFile.Close()

		return fmt.Errorf("(io-copy) failed to create dst: %w", err)
	}

	defer func() {
		if !copyComplete {
			i.cleanFileAfterFailure(dst)
		}
	}()

	if err := transferFile(srcFile, dstFile); err != nil {
		dstFile.Close()
		srcFile.Close()

		return err
	}

	if err := dstFile.Close(); err != nil {
		srcFile.Close()

		return fmt.Errorf("(io-copy) failed to close dst: %w", err)
	}

	if err := srcFile.Close(); err != nil {
		return fmt.Errorf("(io-copy) failed to close src: %w", err)
	}

	i.ensureOwnership(dst, metadata)

	if err := i.ensurePermissions(dst, metadata); err != nil {
		return fmt.Errorf("(io-copy) %w", err)
	}

	i.ensureTimestamps(dst, metadata)

	copyComplete = true

	return nil
}

// transferFile streams the content of srcFile into dstFile, syncs it and
// verifies the written content by reading it back.
func transferFile(srcFile *os.File, dstFile *os.File) error {
	srcHasher := blake3.New()
	dstHasher := blake3.New()

	if _, err := io.Copy(dstFile, io.TeeReader(srcFile, srcHasher)); err != nil {
		return fmt.Errorf("(io-copy) failed to copy: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		return fmt.Errorf("(io-copy) failed to sync dst: %w", err)
	}

	if _, err := dstFile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("(io-copy) failed to seek dst: %w", err)
	}

	if _, err := io.Copy(dstHasher, dstFile); err != nil {
		return fmt.Errorf("(io-copy) failed to read back dst: %w", err)
	}

	srcChecksum := hex.EncodeToString(srcHasher.Sum(nil))
	dstChecksum := hex.EncodeToString(dstHasher.Sum(nil))

	if srcChecksum != dstChecksum {
		return fmt.Errorf("(io-copy) %w: %s: %s (src) != %s (dst)", ErrHashMismatch, dstFile.Name(), srcChecksum, dstChecksum)
	}

	return nil
}

// cleanFileAfterFailure removes after a failure the destination file that was
// created by the failed copy.
func (i *Handler) cleanFileAfterFailure(dst string) {
	if err := i.osHandler.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failure removing destination file cleaning after failure (skipped)",
			"path", dst,
			"err", err,
		)
	}
}

package filesystem

import (
	"fmt"

	"github.com/sjmulder/linkmove/internal/schema"
	"golang.org/x/sys/unix"
)

// GetMetadata returns the [schema.Metadata] of the element at path. Symbolic
// links are not followed, their target is recorded instead.
func (f *Handler) GetMetadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to lstat %s: %w", path, err)
	}

	metadata := &schema.Metadata{
		Perms:      uint32(stat.Mode) & permsMask,
		UID:        stat.Uid,
		GID:        stat.Gid,
		AccessedAt: stat.Atim,
		ModifiedAt: stat.Mtim,
		Size:       handleSize(stat.Size),
		IsDir:      (stat.Mode & unix.S_IFMT) == unix.S_IFDIR,
		IsRegular:  (stat.Mode & unix.S_IFMT) == unix.S_IFREG,
		IsSymlink:  (stat.Mode & unix.S_IFMT) == unix.S_IFLNK,
	}

	if metadata.IsSymlink {
		symlinkTarget, err := f.osHandler.Readlink(path)
		if err != nil {
			return nil, fmt.Errorf("(fs-metadata) failed to readlink: %w", err)
		}
		metadata.SymlinkTo = symlinkTarget
	}

	return metadata, nil
}

package filesystem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DiskStats holds disk usage information. It is meant to be passed by value.
type DiskStats struct {
	TotalSize uint64
	FreeSpace uint64
}

// GetDiskUsage gets the [DiskStats] of the filesystem holding path.
func (f *Handler) GetDiskUsage(path string) (DiskStats, error) {
	var stat unix.Statfs_t
	if err := f.unixHandler.Statfs(path, &stat); err != nil {
		return DiskStats{}, fmt.Errorf("(fs-diskstats) failed to statfs %s: %w", path, err)
	}

	return statfsToDiskStats(&stat), nil
}

// HasEnoughFreeSpace checks if the filesystem holding path can house a file
// of a certain fileSize.
func (f *Handler) HasEnoughFreeSpace(path string, fileSize uint64) (bool, error) {
	stats, err := f.GetDiskUsage(path)
	if err != nil {
		return false, fmt.Errorf("(fs-efree) failed to get usage: %w", err)
	}

	if stats.FreeSpace >= fileSize {
		return true, nil
	}

	return false, nil
}

//go:build !openbsd

package filesystem

import "golang.org/x/sys/unix"

func statfsToDiskStats(stat *unix.Statfs_t) DiskStats {
	return DiskStats{
		TotalSize: stat.Blocks * handleSize(int64(stat.Bsize)),
		FreeSpace: stat.Bavail * handleSize(int64(stat.Bsize)),
	}
}

//go:build openbsd

package filesystem

import "golang.org/x/sys/unix"

func statfsToDiskStats(stat *unix.Statfs_t) DiskStats {
	return DiskStats{
		TotalSize: stat.F_blocks * handleSize(int64(stat.F_bsize)),
		FreeSpace: handleSize(stat.F_bavail) * handleSize(int64(stat.F_bsize)),
	}
}

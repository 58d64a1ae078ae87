package schema

import "golang.org/x/sys/unix"

// Metadata is a structure holding the metadata of a filesystem element, as
// established by a non-following stat of that element.
type Metadata struct {
	Perms      uint32
	UID        uint32
	GID        uint32
	AccessedAt unix.Timespec
	ModifiedAt unix.Timespec
	Size       uint64
	IsDir      bool
	IsRegular  bool
	IsSymlink  bool
	SymlinkTo  string
}

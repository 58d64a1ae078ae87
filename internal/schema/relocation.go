package schema

// Relocation is the principal structure for a filesystem element that is to be
// moved and linked back. It holds the (trailing-slash normalized) source path
// as given by the caller and the exact final destination path, which is the
// new path of the element itself and not its parent directory.
//
// Relocations are meant to be passed by reference (pointer) and are not
// thread-safe.
type Relocation struct {
	// SourcePath is the path the element is located at, and where the
	// symbolic link is created once the element was moved.
	SourcePath string

	// DestPath is the exact path the element is to be moved to.
	DestPath string
}

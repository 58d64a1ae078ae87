package io

import "errors"

var (
	// ErrNotEnoughSpace is an error that occurs when there is not enough free
	// space on the destination to take a file that is copied across devices.
	ErrNotEnoughSpace = errors.New("not enough free space on destination")

	// ErrHashMismatch is an error that occurs when there is a source/destination
	// hash mismatch, this usually means that there are underlying
	// transfer/hardware issues.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrUnsupportedType is an error that occurs when an element needs to be
	// copied across devices, but is neither a directory, regular file nor
	// symbolic link (e.g. a device node, socket or named pipe).
	ErrUnsupportedType = errors.New("unsupported file type for cross-device move")

	// ErrLinkBackFailed is an error that occurs when an element was moved, but
	// the symbolic link at its original location could not be created. The
	// content is already at its new location at that point.
	ErrLinkBackFailed = errors.New("moved, but failed to link back")

	// ErrSameFile is an error that occurs when source and destination already
	// are the same file, usually because the source is the link to the
	// destination left behind by an earlier run.
	ErrSameFile = errors.New("source and destination are the same file")
)

package pathing

import "errors"

var (
	// ErrNotADirectory occurs when more than one source is given, but the
	// target is not an existing directory to relocate them into.
	ErrNotADirectory = errors.New("not a directory")

	// ErrNoSources occurs when a resolution is requested without sources.
	ErrNoSources = errors.New("no sources given")

	// ErrEmptyPath occurs when a source or target is given as empty string.
	ErrEmptyPath = errors.New("empty path")
)

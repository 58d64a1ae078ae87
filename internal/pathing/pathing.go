// Package pathing resolves the exact destination path of every source that is
// to be relocated, depending on whether the target is an existing directory
// or a literal new path.
package pathing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sjmulder/linkmove/internal/schema"
)

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
}

// Handler is the principal implementation for the pathing services.
type Handler struct {
	osHandler osProvider
}

// NewHandler returns a pointer to a new pathing [Handler].
func NewHandler(osHandler osProvider) *Handler {
	return &Handler{
		osHandler: osHandler,
	}
}

// Resolve establishes a [schema.Relocation] for every given source, in the
// order the sources were given.
//
// If the target is an existing directory (symbolic links to directories are
// followed), each source is relocated into it under its own base name. Any
// other target is used verbatim as the new path, which is only possible for a
// single source. Nothing is modified on the filesystem, so an error returned
// here means that no source was touched.
func (p *Handler) Resolve(sources []string, target string) ([]*schema.Relocation, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("(pathing-resolve) %w", ErrNoSources)
	}

	if target == "" {
		return nil, fmt.Errorf("(pathing-resolve) target: %w", ErrEmptyPath)
	}

	for _, src := range sources {
		if src == "" {
			return nil, fmt.Errorf("(pathing-resolve) source: %w", ErrEmptyPath)
		}
	}

	isDir, err := p.isDirectory(target)
	if err != nil {
		return nil, fmt.Errorf("(pathing-resolve) failed to stat target: %w", err)
	}

	if !isDir {
		if len(sources) > 1 {
			return nil, fmt.Errorf("(pathing-resolve) %s: %w", target, ErrNotADirectory)
		}

		return []*schema.Relocation{{
			SourcePath: CleanPath(sources[0]),
			DestPath:   target,
		}}, nil
	}

	relocations := make([]*schema.Relocation, 0, len(sources))

	for _, src := range sources {
		srcPath := CleanPath(src)

		relocations = append(relocations, &schema.Relocation{
			SourcePath: srcPath,
			DestPath:   JoinPath(target, BaseName(srcPath)),
		})
	}

	return relocations, nil
}

// isDirectory returns whether path is an existing directory. A non-existing
// path is not an error.
func (p *Handler) isDirectory(path string) (bool, error) {
	info, err := p.osHandler.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return info.IsDir(), nil
}

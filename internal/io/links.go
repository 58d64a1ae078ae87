package io

import (
	"fmt"
	"path/filepath"
)

// LinkBack creates a symbolic link at src, the original location of an
// element that was moved to dst. A relative dst is made absolute first, as it
// would otherwise resolve relative to the directory of the link.
func (i *Handler) LinkBack(src string, dst string) error {
	target := dst

	if !filepath.IsAbs(target) {
		abs, err := filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("(io-linkback) %w: %s: %w", ErrLinkBackFailed, dst, err)
		}
		target = abs
	}

	if err := i.unixHandler.Symlink(target, src); err != nil {
		return fmt.Errorf("(io-linkback) %w: %s -> %s: %w", ErrLinkBackFailed, src, target, err)
	}

	return nil
}

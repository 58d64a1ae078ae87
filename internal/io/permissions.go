package io

import (
	"fmt"
	"log/slog"

	"github.com/sjmulder/linkmove/internal/schema"
)

// ownerAccess is added to the permissions of recreated directories until all
// their entries are moved.
const ownerAccess = 0o700

// ensureOwnership copies the ownership to path insofar possible, as this
// commonly requires privileges the mover does not have.
func (i *Handler) ensureOwnership(path string, metadata *schema.Metadata) {
	if err := i.unixHandler.Chown(path, int(metadata.UID), int(metadata.GID)); err != nil {
		slog.Warn("Failure copying ownership (skipped)",
			"path", path,
			"err", err,
		)
	}
}

// ensureLinkOwnership is [Handler.ensureOwnership] for symbolic links.
func (i *Handler) ensureLinkOwnership(path string, metadata *schema.Metadata) {
	if err := i.unixHandler.Lchown(path, int(metadata.UID), int(metadata.GID)); err != nil {
		slog.Warn("Failure copying link ownership (skipped)",
			"path", path,
			"err", err,
		)
	}
}

func (i *Handler) ensurePermissions(path string, metadata *schema.Metadata) error {
	if err := i.unixHandler.Chmod(path, metadata.Perms); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}

	return nil
}

package io

import (
	"log/slog"

	"github.com/sjmulder/linkmove/internal/schema"
	"golang.org/x/sys/unix"
)

// ensureTimestamps copies the access and modification times to path insofar
// possible.
func (i *Handler) ensureTimestamps(path string, metadata *schema.Metadata) {
	ts := []unix.Timespec{metadata.AccessedAt, metadata.ModifiedAt}

	if err := i.unixHandler.UtimesNano(path, ts); err != nil {
		slog.Warn("Failure copying timestamps (skipped)",
			"path", path,
			"err", err,
		)
	}
}

package commands

import (
	"context"

	"proteseflow/internal/core/ports"

	"github.com/rs/zerolog"
)

// fileCleaner removes blobs that no longer belong to any stored attachment. A blob
// that cannot be removed is logged and left behind; the business operation has
// already succeeded or failed by then.
type fileCleaner struct {
	storage ports.FileStorage
	log     zerolog.Logger
}

func (c fileCleaner) remove(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := c.storage.Delete(ctx, ref); err != nil {
			c.log.Warn().Err(err).Str("file", ref).Msg("orphaned attachment blob left in storage")
		}
	}
}

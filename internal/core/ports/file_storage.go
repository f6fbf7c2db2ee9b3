package ports

import (
	"context"
	"io"
	"time"

	"proteseflow/internal/core/domain/model/order"
)

// FileUpload is an incoming file not stored yet.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
	Description string
}

// FileStorage keeps attachment blobs outside the database. Keys are organised by
// upload date.
type FileStorage interface {
	// Save writes the blob and returns its stored reference.
	Save(ctx context.Context, upload FileUpload) (order.File, error)

	// Delete removes a blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, ref string) error

	// DownloadURL returns a link to the blob valid for ttl. The browser receives the
	// original file name.
	DownloadURL(ctx context.Context, file order.File, ttl time.Duration) (string, error)
}

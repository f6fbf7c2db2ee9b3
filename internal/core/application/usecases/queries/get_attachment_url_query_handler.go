package queries

import (
	"context"
	"time"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// DefaultDownloadTTL is how long a download link stays valid.
const DefaultDownloadTTL = 15 * time.Minute

type GetAttachmentURLQueryHandler struct {
	db      *gorm.DB
	storage ports.FileStorage
	ttl     time.Duration
}

func NewGetAttachmentURLQueryHandler(db *gorm.DB, storage ports.FileStorage, ttl time.Duration) GetAttachmentURLQueryHandler {
	if ttl <= 0 {
		ttl = DefaultDownloadTTL
	}
	return GetAttachmentURLQueryHandler{db: db, storage: storage, ttl: ttl}
}

// Handle resolves the attachment through its order. An attachment of another order, or
// of an order the actor cannot see, is reported as not found.
func (h GetAttachmentURLQueryHandler) Handle(ctx context.Context, query GetAttachmentURLQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var rows []struct {
		DentistID   int64
		FileRef     string
		FileName    string
		ContentType string
		Size        int64
	}
	if err := h.db.WithContext(ctx).
		Table("attachments").
		Select("orders.dentist_id, attachments.file_ref, attachments.file_name, attachments.content_type, attachments.size").
		Joins("JOIN orders ON orders.id = attachments.order_id").
		Where("attachments.id = ? AND attachments.order_id = ?", query.AttachmentID().Int64(), query.OrderID().Int64()).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return "", err
	}

	if len(rows) == 0 || !policy.CanViewOrderOwnedBy(query.Actor(), kernel.ID(rows[0].DentistID)) {
		return "", errs.NewObjectNotFoundError("attachment", query.AttachmentID())
	}

	row := rows[0]
	return h.storage.DownloadURL(ctx, order.File{
		Ref:         row.FileRef,
		Name:        row.FileName,
		ContentType: row.ContentType,
		Size:        row.Size,
	}, h.ttl)
}

package queries

import (
	"context"
	"time"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError both for missing orders and for orders the
// actor may not see.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []orderRow
	if err := visibleOrders(db, query.Actor()).
		Where("orders.id = ?", query.OrderID().Int64()).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return OrderView{}, err
	}
	if len(rows) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	row := rows[0]
	summary, err := row.summary()
	if err != nil {
		return OrderView{}, err
	}

	sex, err := order.ParseSex(row.PatientSex)
	if err != nil {
		return OrderView{}, err
	}

	attachments, err := h.attachments(db, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	return OrderView{
		OrderSummary:  summary,
		PatientSex:    sex,
		Color:         row.Color,
		Notes:         row.Notes,
		Attachments:   attachments,
		CanEditStatus: policy.CanEditOrderStatus(query.Actor()),
		CanDelete:     policy.CanDeleteOrder(query.Actor()),
	}, nil
}

func (h GetOrderQueryHandler) attachments(db *gorm.DB, orderID kernel.ID) ([]AttachmentView, error) {
	var rows []struct {
		ID          int64
		FileName    string
		ContentType string
		Size        int64
		Description string
		UploadedAt  time.Time
	}
	if err := db.Table("attachments").
		Select("id, file_name, content_type, size, description, uploaded_at").
		Where("order_id = ?", orderID.Int64()).
		Order("id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]AttachmentView, 0, len(rows))
	for _, r := range rows {
		views = append(views, AttachmentView{
			ID:          kernel.ID(r.ID),
			Name:        r.FileName,
			ContentType: r.ContentType,
			Size:        r.Size,
			Description: r.Description,
			UploadedAt:  r.UploadedAt,
		})
	}
	return views, nil
}

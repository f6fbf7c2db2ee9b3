package queries

import (
	"context"
	"strconv"
	"strings"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/domain/policy"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler returns the order listing for the actor. Internal staff see
// every order; anyone else sees only the orders they own.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := visibleOrders(h.db.WithContext(ctx), query.Actor())

	if !query.Dentist().IsZero() && policy.IsInternalStaff(query.Actor()) {
		tx = tx.Where("orders.dentist_id = ?", query.Dentist().Int64())
	}

	if search := query.Search(); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		if id, err := strconv.ParseInt(search, 10, 64); err == nil {
			tx = tx.Where("orders.id = ? OR orders.patient_name ILIKE ?", id, pattern)
		} else {
			tx = tx.Where("orders.patient_name ILIKE ?", pattern)
		}
	}

	var rows []orderRow
	if err := tx.Order(query.Sort().clause()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return summaries(rows)
}

// visibleOrders selects order rows joined with their owner, restricted to what actor
// may see.
func visibleOrders(db *gorm.DB, actor *user.User) *gorm.DB {
	tx := db.Table("orders").
		Select(orderColumns).
		Joins("JOIN users ON users.id = orders.dentist_id")

	if !policy.IsInternalStaff(actor) {
		tx = tx.Where("orders.dentist_id = ?", actor.ID().Int64())
	}
	return tx
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

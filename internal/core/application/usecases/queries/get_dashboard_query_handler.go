package queries

import (
	"context"

	"proteseflow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// Dashboard is the landing page read model.
type Dashboard struct {
	Recent []OrderSummary

	// Counts has an entry for every status, zero included.
	Counts map[order.Status]int
	Total  int
}

type GetDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle returns the newest visible orders, newest first, and how many visible orders
// are in each status.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (Dashboard, error) {
	if err := query.Validate(); err != nil {
		return Dashboard{}, err
	}

	db := h.db.WithContext(ctx)

	var recent []orderRow
	if err := visibleOrders(db, query.Actor()).
		Order("orders.created_at DESC, orders.id DESC").
		Limit(DashboardRecentOrders).
		Scan(&recent).Error; err != nil {
		return Dashboard{}, err
	}

	latest, err := summaries(recent)
	if err != nil {
		return Dashboard{}, err
	}

	dashboard := Dashboard{
		Recent: latest,
		Counts: make(map[order.Status]int, len(order.AllStatuses())),
	}
	for _, s := range order.AllStatuses() {
		dashboard.Counts[s] = 0
	}

	rows, err := visibleOrders(db, query.Actor()).
		Select("orders.status, COUNT(*)").
		Group("orders.status").
		Rows()
	if err != nil {
		return Dashboard{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var code string
		var count int
		if err = rows.Scan(&code, &count); err != nil {
			return Dashboard{}, err
		}

		status, parseErr := order.ParseStatus(code)
		if parseErr != nil {
			return Dashboard{}, parseErr
		}
		dashboard.Counts[status] = count
		dashboard.Total += count
	}

	if err = rows.Err(); err != nil {
		return Dashboard{}, err
	}

	return dashboard, nil
}

package queries

import (
	"context"

	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// UserDetails is one account with the number of orders it owns.
type UserDetails struct {
	UserSummary
	OrderCount int
}

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle lets managers read any account and everyone else only their own.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserDetails, error) {
	if err := query.Validate(); err != nil {
		return UserDetails{}, err
	}
	if !policy.CanManageUsers(query.Actor()) && !query.Actor().ID().IsEqual(query.UserID()) {
		return UserDetails{}, errs.NewPermissionDeniedError("view user")
	}

	db := h.db.WithContext(ctx)

	var rows []userRow
	if err := db.Table("users").
		Select(userColumns).
		Where("id = ?", query.UserID().Int64()).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return UserDetails{}, err
	}
	if len(rows) == 0 {
		return UserDetails{}, errs.NewObjectNotFoundError("user", query.UserID())
	}

	summary, err := rows[0].summary()
	if err != nil {
		return UserDetails{}, err
	}

	var count int64
	if err = db.Table("orders").
		Where("dentist_id = ?", query.UserID().Int64()).
		Count(&count).Error; err != nil {
		return UserDetails{}, err
	}

	return UserDetails{UserSummary: summary, OrderCount: int(count)}, nil
}

package queries

import (
	"context"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/pkg/errs"

	"gorm.io/gorm"
)

const userColumns = "id, username, email, phone, role, license, is_superuser, confirmed, state, joined_at"

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle is restricted to managers.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !policy.CanManageUsers(query.Actor()) {
		return nil, errs.NewPermissionDeniedError("list users")
	}

	tx := h.db.WithContext(ctx).Table("users").Select(userColumns)

	switch query.View() {
	case ArchivedUsers:
		tx = tx.Where("state = ?", int(user.Archived))
	case PendingApprovals:
		tx = tx.Where("state = ? AND NOT confirmed AND NOT is_superuser", int(user.Active))
	case DentistOwners:
		tx = tx.Where("state = ? AND role = ?", int(user.Active), user.Dentist.String())
	default:
		tx = tx.Where("state = ?", int(user.Active))
	}

	var rows []userRow
	if err := tx.Order("lower(username), id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]UserSummary, 0, len(rows))
	for _, row := range rows {
		s, err := row.summary()
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

package queries

import (
	"errors"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// DashboardRecentOrders is how many of the newest orders the dashboard shows.
const DashboardRecentOrders = 5

// GetDashboardQuery summarises the orders visible to the actor.
type GetDashboardQuery struct {
	actor *user.User
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery(actor *user.User) (GetDashboardQuery, error) {
	if err := validateActor(actor); err != nil {
		return GetDashboardQuery{}, err
	}
	return GetDashboardQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

func (q GetDashboardQuery) Actor() *user.User { return q.actor }

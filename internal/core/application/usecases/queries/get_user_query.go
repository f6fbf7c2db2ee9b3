package queries

import (
	"errors"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

type GetUserQuery struct {
	actor  *user.User
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(actor *user.User, userID kernel.ID) (GetUserQuery, error) {
	if err := errors.Join(validateActor(actor), userID.Validate()); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{actor: actor, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) Actor() *user.User { return q.actor }
func (q GetUserQuery) UserID() kernel.ID { return q.userID }

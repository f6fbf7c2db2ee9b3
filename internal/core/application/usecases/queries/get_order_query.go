package queries

import (
	"errors"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order with its attachments.
type GetOrderQuery struct {
	actor   *user.User
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor *user.User, orderID kernel.ID) (GetOrderQuery, error) {
	if err := errors.Join(validateActor(actor), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() *user.User  { return q.actor }
func (q GetOrderQuery) OrderID() kernel.ID { return q.orderID }

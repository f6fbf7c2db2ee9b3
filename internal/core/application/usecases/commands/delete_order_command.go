package commands

import (
	"errors"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order with its attachments.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	actor   *user.User
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(actor *user.User, orderID kernel.ID) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateActor(actor); err != nil {
		return DeleteOrderCommand{}, err
	}
	cmd.actor = actor

	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Actor() *user.User  { return c.actor }
func (c DeleteOrderCommand) OrderID() kernel.ID { return c.orderID }

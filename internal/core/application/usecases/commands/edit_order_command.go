package commands

import (
	"errors"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand replaces the case details of an order. Owner and status are not
// part of it.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	actor   *user.User
	orderID kernel.ID
	details order.Details

	guard guard.ConstructorGuard
}

func NewEditOrderCommand(actor *user.User, orderID kernel.ID, details order.Details) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setDetails(details),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) Actor() *user.User      { return c.actor }
func (c EditOrderCommand) OrderID() kernel.ID     { return c.orderID }
func (c EditOrderCommand) Details() order.Details { return c.details }

func (c *EditOrderCommand) setActor(actor *user.User) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *EditOrderCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *EditOrderCommand) setDetails(details order.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	c.details = details
	return nil
}

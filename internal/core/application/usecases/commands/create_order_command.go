package commands

import (
	"errors"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"
	"proteseflow/internal/pkg/guard"
)

const maxAttachmentsPerOrder = 20

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a new fabrication request together with its files.
//
// Example:
//
//	details, _ := order.NewDetails(order.Details{PatientName: "Maria Silva", ServiceType: "Coroa", ...})
//	cmd, err := NewCreateOrderCommand(dentist, 0, details, uploads)
//	o, err := handler.Handle(ctx, cmd)
//
// A zero dentistID makes the actor the owner. Only managers may name another dentist.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor     *user.User
	dentistID kernel.ID
	details   order.Details
	uploads   []ports.FileUpload

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	actor *user.User,
	dentistID kernel.ID,
	details order.Details,
	uploads []ports.FileUpload,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		dentistID: dentistID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDetails(details),
		cmd.setUploads(uploads),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() *user.User      { return c.actor }
func (c CreateOrderCommand) Details() order.Details { return c.details }

// DentistID returns the requested owner, or zero when the actor owns the order.
func (c CreateOrderCommand) DentistID() kernel.ID { return c.dentistID }

func (c CreateOrderCommand) Uploads() []ports.FileUpload {
	return append([]ports.FileUpload(nil), c.uploads...)
}

func (c *CreateOrderCommand) setActor(actor *user.User) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	c.details = details
	return nil
}

func (c *CreateOrderCommand) setUploads(uploads []ports.FileUpload) error {
	if len(uploads) > maxAttachmentsPerOrder {
		return errs.NewValueIsOutOfRangeError("files", len(uploads), 0, maxAttachmentsPerOrder)
	}
	for _, u := range uploads {
		if u.Content == nil {
			return errs.NewValueIsRequiredError("files")
		}
	}
	c.uploads = uploads
	return nil
}

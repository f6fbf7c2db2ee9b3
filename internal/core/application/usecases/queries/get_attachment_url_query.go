package queries

import (
	"errors"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrGetAttachmentURLQueryIsNotConstructed = errors.New(
	"GetAttachmentURLQuery must be created via NewGetAttachmentURLQuery constructor",
)

// GetAttachmentURLQuery asks for a short-lived download link of one attachment.
type GetAttachmentURLQuery struct {
	actor        *user.User
	orderID      kernel.ID
	attachmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetAttachmentURLQuery(actor *user.User, orderID, attachmentID kernel.ID) (GetAttachmentURLQuery, error) {
	if err := errors.Join(validateActor(actor), orderID.Validate(), attachmentID.Validate()); err != nil {
		return GetAttachmentURLQuery{}, err
	}

	return GetAttachmentURLQuery{
		actor:        actor,
		orderID:      orderID,
		attachmentID: attachmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetAttachmentURLQuery) Validate() error {
	return q.guard.Validate(ErrGetAttachmentURLQueryIsNotConstructed)
}

func (q GetAttachmentURLQuery) Actor() *user.User       { return q.actor }
func (q GetAttachmentURLQuery) OrderID() kernel.ID      { return q.orderID }
func (q GetAttachmentURLQuery) AttachmentID() kernel.ID { return q.attachmentID }

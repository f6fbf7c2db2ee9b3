package commands

import (
	"context"
	"errors"
	"fmt"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// CreateOrderCommandHandler stores new orders.
//
// Business rules:
//   - the creator must have a confirmed registration or be a superuser
//   - only managers choose another owner, and the owner must be an active dentist
//   - the order always starts Pending
//   - files are written to storage first and removed again if the order is not stored
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	storage    ports.FileStorage
	files      fileCleaner
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, storage ports.FileStorage, log zerolog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		files:      fileCleaner{storage: storage, log: log},
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !policy.CanCreateOrder(actor) {
		return nil, errs.NewPermissionDeniedErrorWithCause(
			"create order",
			errors.New("registration is awaiting approval"),
		)
	}

	ownerID := actor.ID()
	if !cmd.DentistID().IsZero() && !cmd.DentistID().IsEqual(actor.ID()) {
		if !policy.CanSelectOrderOwner(actor) {
			return nil, errs.NewPermissionDeniedError("create order for another dentist")
		}
		ownerID = cmd.DentistID()
	}

	attachments, stored, err := h.store(ctx, cmd.Uploads())
	if err != nil {
		h.files.remove(ctx, stored)
		return nil, err
	}

	o, err := h.persist(ctx, actor, ownerID, cmd.Details(), attachments)
	if err != nil {
		h.files.remove(ctx, stored)
		return nil, err
	}

	return o, nil
}

// store writes every upload and returns the keys written so far, also on failure.
func (h *CreateOrderCommandHandler) store(ctx context.Context, uploads []ports.FileUpload) ([]*order.Attachment, []string, error) {
	attachments := make([]*order.Attachment, 0, len(uploads))
	stored := make([]string, 0, len(uploads))

	for _, upload := range uploads {
		file, err := h.storage.Save(ctx, upload)
		if err != nil {
			return nil, stored, fmt.Errorf("store %s: %w", upload.Name, err)
		}
		stored = append(stored, file.Ref)

		a, err := order.NewAttachment(file, upload.Description)
		if err != nil {
			return nil, stored, err
		}
		attachments = append(attachments, a)
	}

	return attachments, stored, nil
}

func (h *CreateOrderCommandHandler) persist(
	ctx context.Context,
	actor *user.User,
	ownerID kernel.ID,
	details order.Details,
	attachments []*order.Attachment,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if !ownerID.IsEqual(actor.ID()) {
		if err := ensureDentist(ctx, uow.UserRepository(), ownerID); err != nil {
			return nil, err
		}
	}

	o, err := order.NewOrder(ownerID, details, attachments)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func ensureDentist(ctx context.Context, repo ports.UserRepository, id kernel.ID) error {
	dentist, err := repo.Get(ctx, id)
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return errs.NewValueIsInvalidErrorWithCause("dentist", err)
	}
	if err != nil {
		return err
	}

	if !dentist.HasRole(user.Dentist) || !dentist.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"dentist",
			fmt.Errorf("%s is not an active dentist", dentist.Username()),
		)
	}
	return nil
}

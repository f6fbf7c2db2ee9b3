package commands

import (
	"context"

	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// DeleteOrderCommandHandler deletes orders on behalf of managers. Attachment blobs are
// removed from storage once the delete is committed.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	files      fileCleaner
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, storage ports.FileStorage, log zerolog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		files:      fileCleaner{storage: storage, log: log},
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := getVisibleOrder(ctx, orderRepo, cmd)
	if err != nil {
		return err
	}

	if !policy.CanDeleteOrder(cmd.Actor()) {
		return errs.NewPermissionDeniedError("delete order")
	}

	if err = orderRepo.Delete(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.files.remove(ctx, uow.RemovedFiles())
	return nil
}

package commands

import (
	"context"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"
)

// EditOrderCommandHandler lets the owning dentist or any staff member change order
// details, whatever the status.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewEditOrderCommandHandler(uowFactory OrderUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := getVisibleOrder(ctx, orderRepo, cmd)
	if err != nil {
		return nil, err
	}

	if !policy.CanEditOrder(cmd.Actor(), o) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if err = o.EditDetails(cmd.Details()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

type orderTarget interface {
	Actor() *user.User
	OrderID() kernel.ID
}

// getVisibleOrder loads the order and folds "not yours" into not found.
func getVisibleOrder(ctx context.Context, repo ports.OrderRepository, cmd orderTarget) (*order.Order, error) {
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !policy.CanViewOrder(cmd.Actor(), o) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID())
	}
	return o, nil
}

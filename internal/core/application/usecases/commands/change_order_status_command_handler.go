package commands

import (
	"context"

	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies status changes requested by lab staff.
//
// Business rules:
//   - an order the actor cannot see is reported as not found
//   - only internal staff change status; anyone else gets PermissionDenied and the
//     order is left as it was
//   - moving to the current status succeeds without writing
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	if !policy.CanEditOrderStatus(cmd.Actor()) {
		return nil, errs.NewPermissionDeniedError("change order status")
	}

	changed, err := o.ChangeStatus(cmd.Status())
	if err != nil {
		return nil, err
	}
	if !changed {
		return o, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

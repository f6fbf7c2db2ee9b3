package commands

import (
	"context"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/pkg/errs"
)

type EditUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewEditUserCommandHandler(uowFactory UserUoWFactory) EditUserCommandHandler {
	return EditUserCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *EditUserCommandHandler) Handle(ctx context.Context, cmd EditUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !policy.CanManageUsers(cmd.Actor()) {
		return nil, errs.NewPermissionDeniedError("edit user")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	target, err := userRepo.Get(ctx, cmd.TargetID())
	if err != nil {
		return nil, err
	}

	if err = target.Edit(cmd.Profile(), cmd.Role(), cmd.License()); err != nil {
		return nil, err
	}

	if err = ensureUsernameFree(ctx, userRepo, target); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

package commands

import (
	"context"

	"proteseflow/internal/core/domain/model/user"
)

type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reloads the actor inside the transaction and applies the profile. Role,
// license and confirmation are never touched here.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
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

	userRepo := uow.UserRepository()
	me, err := userRepo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return nil, err
	}

	if err = me.UpdateProfile(cmd.Profile()); err != nil {
		return nil, err
	}

	if err = ensureUsernameFree(ctx, userRepo, me); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, me); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return me, nil
}

package commands

import (
	"context"

	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"
)

type ChangePasswordCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewChangePasswordCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle checks the current password against the stored hash before replacing it.
// A mismatch is a validation error on "current_password".
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
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

	userRepo := uow.UserRepository()
	me, err := userRepo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	if err = h.hasher.Compare(me.PasswordHash(), cmd.CurrentPassword()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("current_password", err)
	}

	hash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	if err = me.ChangePasswordHash(hash); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, me); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"
)

type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewCreateUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle stores a confirmed account with the requested role. Only managers may call it.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !policy.CanManageUsers(cmd.Actor()) {
		return nil, errs.NewPermissionDeniedError("create user")
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	u, err := user.NewByManager(user.Registration{
		Profile:      cmd.Profile(),
		License:      cmd.License(),
		PasswordHash: hash,
	}, cmd.Role())
	if err != nil {
		return nil, err
	}

	if err = addAccount(ctx, h.uowFactory.Create(), u); err != nil {
		return nil, err
	}
	return u, nil
}

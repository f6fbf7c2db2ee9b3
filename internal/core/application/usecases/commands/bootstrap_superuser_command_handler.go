package commands

import (
	"context"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/ports"
)

type BootstrapSuperuserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewBootstrapSuperuserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) BootstrapSuperuserCommandHandler {
	return BootstrapSuperuserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle creates the superuser unless an account with that username already exists,
// whatever its role or state. The bool reports whether an account was created.
func (h *BootstrapSuperuserCommandHandler) Handle(ctx context.Context, cmd BootstrapSuperuserCommand) (*user.User, bool, error) {
	if err := cmd.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := h.uowFactory.Create().UserRepository().FindByLogin(ctx, cmd.Profile().Username)
	if err != nil {
		return nil, false, err
	}
	for _, u := range existing {
		if u.MatchesUsername(cmd.Profile().Username) {
			return u, false, nil
		}
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, false, err
	}

	u, err := user.NewSuperuser(user.Registration{
		Profile:      cmd.Profile(),
		PasswordHash: hash,
	})
	if err != nil {
		return nil, false, err
	}

	if err = addAccount(ctx, h.uowFactory.Create(), u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

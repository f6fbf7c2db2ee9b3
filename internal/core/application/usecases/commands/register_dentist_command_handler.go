package commands

import (
	"context"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"
)

// RegisterDentistCommandHandler stores self-registered dentist accounts.
type RegisterDentistCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterDentistCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterDentistCommandHandler {
	return RegisterDentistCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle hashes the password, builds the unconfirmed account and stores it. A username
// already in use, in any letter case, fails with errs.AlreadyExistsError.
func (h *RegisterDentistCommandHandler) Handle(ctx context.Context, cmd RegisterDentistCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	u, err := user.NewSelfRegistered(user.Registration{
		Profile:      cmd.Profile(),
		License:      cmd.License(),
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	if err = addAccount(ctx, h.uowFactory.Create(), u); err != nil {
		return nil, err
	}
	return u, nil
}

func addAccount(ctx context.Context, uow UserUoW, u *user.User) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if err := ensureUsernameFree(ctx, userRepo, u); err != nil {
		return err
	}

	if err := userRepo.Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensureUsernameFree(ctx context.Context, repo ports.UserRepository, u *user.User) error {
	taken, err := repo.UsernameTaken(ctx, u.Username(), u.ID())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewAlreadyExistsError("username", u.Username())
	}
	return nil
}

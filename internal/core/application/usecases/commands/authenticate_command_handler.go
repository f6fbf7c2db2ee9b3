package commands

import (
	"context"
	"errors"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/domain/services"
	"proteseflow/internal/core/ports"
)

// ErrInvalidCredentials covers every failed login: unknown identifier, wrong password
// and archived account look the same to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateCommandHandler resolves the login identifier to one account and checks
// its password.
type AuthenticateCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	resolver   services.LoginResolver
}

func NewAuthenticateCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		resolver:   services.NewLoginResolver(),
	}
}

// Handle returns the authenticated account. The password of the selected account is
// verified even when the identifier matched several accounts.
func (h *AuthenticateCommandHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	candidates, err := uow.UserRepository().FindByLogin(ctx, cmd.Identifier())
	if err != nil {
		return nil, err
	}

	u, err := h.resolver.Resolve(cmd.Identifier(), candidates)
	if errors.Is(err, services.ErrLoginNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive() {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

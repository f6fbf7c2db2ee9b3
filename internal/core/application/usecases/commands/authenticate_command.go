package commands

import (
	"errors"
	"strings"

	"proteseflow/internal/pkg/errs"
	"proteseflow/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand is a login attempt with a username or email.
type AuthenticateCommand struct { //nolint:recvcheck //using for validation
	identifier string
	password   string

	guard guard.ConstructorGuard
}

func NewAuthenticateCommand(identifier, password string) (AuthenticateCommand, error) {
	cmd := AuthenticateCommand{
		identifier: strings.TrimSpace(identifier),
		password:   password,
		guard:      guard.NewConstructorGuard(),
	}

	var problems []error
	if cmd.identifier == "" {
		problems = append(problems, errs.NewValueIsRequiredError("identifier"))
	}
	if cmd.password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if len(problems) > 0 {
		return AuthenticateCommand{}, errors.Join(problems...)
	}

	return cmd, nil
}

func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

func (c AuthenticateCommand) Identifier() string { return c.identifier }
func (c AuthenticateCommand) Password() string   { return c.password }

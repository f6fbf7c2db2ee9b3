package commands

import (
	"errors"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand is a manager opening an account for someone. Such accounts are
// confirmed immediately and may hold any role.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	actor    *user.User
	profile  user.Profile
	role     user.Role
	license  string
	password string

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(
	actor *user.User,
	profile user.Profile,
	role user.Role,
	license, password string,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		profile: profile,
		license: license,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRole(role),
		cmd.setPassword(password),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Actor() *user.User     { return c.actor }
func (c CreateUserCommand) Profile() user.Profile { return c.profile }
func (c CreateUserCommand) Role() user.Role       { return c.role }
func (c CreateUserCommand) License() string       { return c.license }
func (c CreateUserCommand) Password() string      { return c.password }

func (c *CreateUserCommand) setActor(actor *user.User) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	c.password = password
	return nil
}

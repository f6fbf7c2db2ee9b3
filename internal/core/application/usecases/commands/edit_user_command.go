package commands

import (
	"errors"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrEditUserCommandIsNotConstructed = errors.New(
	"EditUserCommand must be created via NewEditUserCommand constructor",
)

// EditUserCommand is the manager-side edit of an account: contact fields, role and
// license.
type EditUserCommand struct { //nolint:recvcheck //using for validation
	actor    *user.User
	targetID kernel.ID
	profile  user.Profile
	role     user.Role
	license  string

	guard guard.ConstructorGuard
}

func NewEditUserCommand(
	actor *user.User,
	targetID kernel.ID,
	profile user.Profile,
	role user.Role,
	license string,
) (EditUserCommand, error) {
	cmd := EditUserCommand{
		profile: profile,
		license: license,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTargetID(targetID),
		cmd.setRole(role),
	); err != nil {
		return EditUserCommand{}, err
	}

	return cmd, nil
}

func (c EditUserCommand) Validate() error {
	return c.guard.Validate(ErrEditUserCommandIsNotConstructed)
}

func (c EditUserCommand) Actor() *user.User     { return c.actor }
func (c EditUserCommand) TargetID() kernel.ID   { return c.targetID }
func (c EditUserCommand) Profile() user.Profile { return c.profile }
func (c EditUserCommand) Role() user.Role       { return c.role }
func (c EditUserCommand) License() string       { return c.license }

func (c *EditUserCommand) setActor(actor *user.User) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *EditUserCommand) setTargetID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.targetID = id
	return nil
}

func (c *EditUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

package commands

import (
	"errors"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand is a user editing their own username, email and phone.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	actor   *user.User
	profile user.Profile

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(actor *user.User, profile user.Profile) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := validateActor(actor); err != nil {
		return UpdateProfileCommand{}, err
	}
	cmd.actor = actor

	return cmd, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) Actor() *user.User     { return c.actor }
func (c UpdateProfileCommand) Profile() user.Profile { return c.profile }

package commands

import (
	"errors"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrBootstrapSuperuserCommandIsNotConstructed = errors.New(
	"BootstrapSuperuserCommand must be created via NewBootstrapSuperuserCommand constructor",
)

// BootstrapSuperuserCommand provisions the first administrator at startup. It has no
// actor: it runs before anyone can log in.
type BootstrapSuperuserCommand struct { //nolint:recvcheck //using for validation
	profile  user.Profile
	password string

	guard guard.ConstructorGuard
}

func NewBootstrapSuperuserCommand(profile user.Profile, password string) (BootstrapSuperuserCommand, error) {
	cmd := BootstrapSuperuserCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setPassword(password); err != nil {
		return BootstrapSuperuserCommand{}, err
	}

	return cmd, nil
}

func (c BootstrapSuperuserCommand) Validate() error {
	return c.guard.Validate(ErrBootstrapSuperuserCommandIsNotConstructed)
}

func (c BootstrapSuperuserCommand) Profile() user.Profile { return c.profile }
func (c BootstrapSuperuserCommand) Password() string      { return c.password }

func (c *BootstrapSuperuserCommand) setPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	c.password = password
	return nil
}

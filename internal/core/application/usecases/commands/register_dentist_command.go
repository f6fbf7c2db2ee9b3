package commands

import (
	"errors"
	"unicode/utf8"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/errs"
	"proteseflow/internal/pkg/guard"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

var ErrRegisterDentistCommandIsNotConstructed = errors.New(
	"RegisterDentistCommand must be created via NewRegisterDentistCommand constructor",
)

// RegisterDentistCommand is a dentist signing up on their own. The account starts
// unconfirmed and cannot create orders until a manager approves it.
//
// Example:
//
//	cmd, err := NewRegisterDentistCommand(
//	    user.Profile{Username: "dr.ana", Email: "ana@clinica.com.br"},
//	    "CRO-SP 12345", "s3nh4-segura",
//	)
//	u, err := handler.Handle(ctx, cmd)
type RegisterDentistCommand struct { //nolint:recvcheck //using for validation
	profile  user.Profile
	license  string
	password string

	guard guard.ConstructorGuard
}

func NewRegisterDentistCommand(profile user.Profile, license, password string) (RegisterDentistCommand, error) {
	cmd := RegisterDentistCommand{
		profile: profile,
		license: license,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setPassword(password); err != nil {
		return RegisterDentistCommand{}, err
	}

	return cmd, nil
}

func (c RegisterDentistCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDentistCommandIsNotConstructed)
}

func (c RegisterDentistCommand) Profile() user.Profile { return c.profile }
func (c RegisterDentistCommand) License() string       { return c.license }
func (c RegisterDentistCommand) Password() string      { return c.password }

func (c *RegisterDentistCommand) setPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	c.password = password
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if n := utf8.RuneCountInString(password); n < minPasswordLength || len(password) > maxPasswordLength {
		return errs.NewValueIsOutOfRangeError("password", n, minPasswordLength, maxPasswordLength)
	}
	return nil
}

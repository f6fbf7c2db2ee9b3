package commands

import (
	"errors"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/errs"
	"proteseflow/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand is a user replacing their own password.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	actor           *user.User
	currentPassword string
	newPassword     string

	guard guard.ConstructorGuard
}

func NewChangePasswordCommand(actor *user.User, currentPassword, newPassword string) (ChangePasswordCommand, error) {
	var currentErr error
	if currentPassword == "" {
		currentErr = errs.NewValueIsRequiredError("current_password")
	}

	if err := errors.Join(validateActor(actor), currentErr, validatePassword(newPassword)); err != nil {
		return ChangePasswordCommand{}, err
	}

	return ChangePasswordCommand{
		actor:           actor,
		currentPassword: currentPassword,
		newPassword:     newPassword,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

func (c ChangePasswordCommand) Actor() *user.User       { return c.actor }
func (c ChangePasswordCommand) CurrentPassword() string { return c.currentPassword }
func (c ChangePasswordCommand) NewPassword() string     { return c.newPassword }

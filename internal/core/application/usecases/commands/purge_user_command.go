package commands

import (
	"errors"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/guard"
)

var ErrPurgeUserCommandIsNotConstructed = errors.New(
	"PurgeUserCommand must be created via NewPurgeUserCommand constructor",
)

// PurgeUserCommand permanently deletes an archived account with all its orders.
// Without confirm it only previews the target.
type PurgeUserCommand struct { //nolint:recvcheck //using for validation
	actor    *user.User
	targetID kernel.ID
	confirm  bool

	guard guard.ConstructorGuard
}

func NewPurgeUserCommand(actor *user.User, targetID kernel.ID, confirm bool) (PurgeUserCommand, error) {
	cmd := PurgeUserCommand{
		confirm: confirm,
		guard:   guard.NewConstructorGuard(),
	}

	if err := validateActor(actor); err != nil {
		return PurgeUserCommand{}, err
	}
	cmd.actor = actor

	if err := targetID.Validate(); err != nil {
		return PurgeUserCommand{}, err
	}
	cmd.targetID = targetID

	return cmd, nil
}

func (c PurgeUserCommand) Validate() error {
	return c.guard.Validate(ErrPurgeUserCommandIsNotConstructed)
}

func (c PurgeUserCommand) Actor() *user.User   { return c.actor }
func (c PurgeUserCommand) TargetID() kernel.ID { return c.targetID }
func (c PurgeUserCommand) Confirm() bool       { return c.confirm }

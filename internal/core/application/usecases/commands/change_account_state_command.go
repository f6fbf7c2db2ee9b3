package commands

import (
	"errors"
	"fmt"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/errs"
	"proteseflow/internal/pkg/guard"
)

var ErrChangeAccountStateCommandIsNotConstructed = errors.New(
	"ChangeAccountStateCommand must be created via NewChangeAccountStateCommand constructor",
)

// AccountAction is a manager decision on an account.
type AccountAction int

const (
	UnknownAccountAction AccountAction = iota

	// ApproveAccount confirms a registration. Idempotent.
	ApproveAccount

	// RejectAccount deletes an unconfirmed registration for good.
	RejectAccount

	// ArchiveAccount moves the account to the trash and blocks its login.
	ArchiveAccount

	// RestoreAccount brings an archived account back.
	RestoreAccount
)

func getAccountActionStrings() map[AccountAction]string {
	//nolint:exhaustive // UnknownAccountAction is not a valid action
	return map[AccountAction]string{
		ApproveAccount: "approve",
		RejectAccount:  "reject",
		ArchiveAccount: "archive",
		RestoreAccount: "restore",
	}
}

// ParseAccountAction converts "approve", "reject", "archive" or "restore".
func ParseAccountAction(s string) (AccountAction, error) {
	for action, str := range getAccountActionStrings() {
		if str == s {
			return action, nil
		}
	}
	return UnknownAccountAction, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not an account action", s))
}

func (a AccountAction) Validate() error {
	if _, ok := getAccountActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not an account action", a))
	}
	return nil
}

func (a AccountAction) String() string {
	if s, ok := getAccountActionStrings()[a]; ok {
		return s
	}
	return "unknown"
}

// removesAccount marks the actions under the self-removal guard.
func (a AccountAction) removesAccount() bool {
	return a == RejectAccount || a == ArchiveAccount
}

// ChangeAccountStateCommand applies an AccountAction to the target account.
//
// Example:
//
//	cmd, err := NewChangeAccountStateCommand(manager, dentistID, ApproveAccount)
//	u, err := handler.Handle(ctx, cmd)
type ChangeAccountStateCommand struct { //nolint:recvcheck //using for validation
	actor    *user.User
	targetID kernel.ID
	action   AccountAction

	guard guard.ConstructorGuard
}

func NewChangeAccountStateCommand(actor *user.User, targetID kernel.ID, action AccountAction) (ChangeAccountStateCommand, error) {
	cmd := ChangeAccountStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTargetID(targetID),
		cmd.setAction(action),
	); err != nil {
		return ChangeAccountStateCommand{}, err
	}

	return cmd, nil
}

func (c ChangeAccountStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeAccountStateCommandIsNotConstructed)
}

func (c ChangeAccountStateCommand) Actor() *user.User     { return c.actor }
func (c ChangeAccountStateCommand) TargetID() kernel.ID   { return c.targetID }
func (c ChangeAccountStateCommand) Action() AccountAction { return c.action }

func (c *ChangeAccountStateCommand) setActor(actor *user.User) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ChangeAccountStateCommand) setTargetID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.targetID = id
	return nil
}

func (c *ChangeAccountStateCommand) setAction(action AccountAction) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}

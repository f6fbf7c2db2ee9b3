package commands

import (
	"context"
	"errors"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// ErrOwnAccount is the cause attached when a manager targets their own account with a
// removing action.
var ErrOwnAccount = errors.New("managers cannot remove their own account")

// ChangeAccountStateCommandHandler runs approve, reject, archive and restore.
//
// Business rules:
//   - only managers (or superusers) act on accounts
//   - reject and archive never apply to the actor's own account
//   - approving a confirmed account, archiving an archived one or restoring an active
//     one succeeds without writing anything
//   - reject deletes the account with its orders; attachment blobs are removed from
//     storage after commit
type ChangeAccountStateCommandHandler struct {
	uowFactory UoWFactory
	files      fileCleaner
}

func NewChangeAccountStateCommandHandler(
	uowFactory UoWFactory,
	storage ports.FileStorage,
	log zerolog.Logger,
) ChangeAccountStateCommandHandler {
	return ChangeAccountStateCommandHandler{
		uowFactory: uowFactory,
		files:      fileCleaner{storage: storage, log: log},
	}
}

// Handle returns the account as it stands after the action. For RejectAccount the
// returned account is in the Deleted state and no longer stored.
func (h *ChangeAccountStateCommandHandler) Handle(ctx context.Context, cmd ChangeAccountStateCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !policy.CanManageUsers(cmd.Actor()) {
		return nil, errs.NewPermissionDeniedError(cmd.Action().String() + " user")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	target, err := userRepo.Get(ctx, cmd.TargetID())
	if err != nil {
		return nil, err
	}

	if cmd.Action().removesAccount() && !policy.CanRemoveAccount(cmd.Actor(), target) {
		return nil, errs.NewPermissionDeniedErrorWithCause(cmd.Action().String()+" user", ErrOwnAccount)
	}

	wasConfirmed, wasState := target.IsConfirmed(), target.State()

	switch cmd.Action() {
	case ApproveAccount:
		err = target.Approve()
	case RejectAccount:
		err = target.Reject()
	case ArchiveAccount:
		err = target.Archive()
	case RestoreAccount:
		err = target.Restore()
	case UnknownAccountAction:
		err = cmd.Action().Validate()
	}
	if err != nil {
		return nil, err
	}

	switch {
	case target.IsDeleted():
		err = userRepo.Delete(ctx, target)
	case target.IsConfirmed() != wasConfirmed || target.State() != wasState:
		err = userRepo.Update(ctx, target)
	default:
		return target, nil
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.files.remove(ctx, uow.RemovedFiles())
	return target, nil
}

package commands

import (
	"context"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/domain/policy"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// PurgeResult tells the caller whether the account is gone or only previewed.
type PurgeResult struct {
	User   *user.User
	Purged bool
}

// PurgeUserCommandHandler implements the two-phase permanent delete of an archived
// account.
type PurgeUserCommandHandler struct {
	uowFactory UoWFactory
	files      fileCleaner
}

func NewPurgeUserCommandHandler(uowFactory UoWFactory, storage ports.FileStorage, log zerolog.Logger) PurgeUserCommandHandler {
	return PurgeUserCommandHandler{
		uowFactory: uowFactory,
		files:      fileCleaner{storage: storage, log: log},
	}
}

// Handle checks permissions and the archived state in both phases. Without confirm
// nothing is written; with confirm the account, its orders and attachments are
// deleted.
func (h *PurgeUserCommandHandler) Handle(ctx context.Context, cmd PurgeUserCommand) (PurgeResult, error) {
	if err := cmd.Validate(); err != nil {
		return PurgeResult{}, err
	}

	if !policy.CanManageUsers(cmd.Actor()) {
		return PurgeResult{}, errs.NewPermissionDeniedError("purge user")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PurgeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	target, err := userRepo.Get(ctx, cmd.TargetID())
	if err != nil {
		return PurgeResult{}, err
	}

	if !policy.CanRemoveAccount(cmd.Actor(), target) {
		return PurgeResult{}, errs.NewPermissionDeniedErrorWithCause("purge user", ErrOwnAccount)
	}

	if _, err = target.State().Purge(); err != nil {
		return PurgeResult{}, err
	}

	if !cmd.Confirm() {
		return PurgeResult{User: target}, nil
	}

	if err = target.Purge(); err != nil {
		return PurgeResult{}, err
	}

	if err = userRepo.Delete(ctx, target); err != nil {
		return PurgeResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PurgeResult{}, err
	}

	h.files.remove(ctx, uow.RemovedFiles())
	return PurgeResult{User: target, Purged: true}, nil
}

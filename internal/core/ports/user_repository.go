// Package ports defines the contracts between the application core and the
// infrastructure: persistence, transactions, file storage and password hashing.
package ports

import (
	"context"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new account and assigns its identifier through user.Identify.
	// A case-insensitive username clash fails with errs.AlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing account. The write is conditional on the
	// version the aggregate was loaded with; a lost race fails with
	// errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves an account by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// Delete removes the account for good. Orders and attachments go with it; the
	// storage keys of those attachments are reported to the unit of work.
	Delete(ctx context.Context, aggregate *user.User) error

	// FindByLogin returns every account whose username or email equals identifier,
	// ignoring case, ordered by id.
	FindByLogin(ctx context.Context, identifier string) ([]*user.User, error)

	// UsernameTaken reports whether another account (any id but exceptID) already uses
	// username, ignoring case. Pass a zero exceptID for new accounts.
	UsernameTaken(ctx context.Context, username string, exceptID kernel.ID) (bool, error)
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// UserRepository returns a repository bound to the current transaction.
	UserRepository() UserRepository

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository

	// RemovedFiles lists the storage keys of attachments deleted through this unit of
	// work. The blobs should only be removed after a successful Commit.
	RemovedFiles() []string
}

// Package postgres provides the GORM-based Unit of Work used by command handlers.
//
// A unit of work wraps one database transaction. Repositories obtained from it after
// Begin run inside that transaction; before Begin they use the plain connection, which
// is how read-only commands such as login use them.
//
// Deletes cascade in the database, but attachment blobs live in file storage. The unit
// of work therefore collects the storage keys of every attachment removed through its
// repositories, and the caller deletes those blobs once Commit has succeeded.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.UserRepository().Delete(ctx, u); err != nil {
//	    return err
//	}
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
//
//	for _, ref := range uow.RemovedFiles() {
//	    _ = storage.Delete(ctx, ref)
//	}
//
// Each UnitOfWork instance is meant for a single goroutine and a single operation.
package postgres

import (
	"context"
	"slices"

	"proteseflow/internal/adapters/out/postgres/orderrepo"
	"proteseflow/internal/adapters/out/postgres/userrepo"
	"proteseflow/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with no transaction and no tracked files.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:           f.db,
		removedFiles: make([]string, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the attachment
// blobs orphaned by it.
type GormUnitOfWork struct {
	db           *gorm.DB
	tx           *gorm.DB
	removedFiles []string
}

// Begin starts the transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the changes permanent. Tracked files stay available through
// RemovedFiles.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction together with the files it tracked. After a
// Commit it returns gorm.ErrInvalidTransaction and changes nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.removedFiles = uow.removedFiles[:0]
	return err
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackRemovedFiles is called by repositories when attachments are deleted.
func (uow *GormUnitOfWork) TrackRemovedFiles(refs ...string) {
	uow.removedFiles = append(uow.removedFiles, refs...)
}

// RemovedFiles returns a copy of the tracked storage keys.
func (uow *GormUnitOfWork) RemovedFiles() []string {
	return slices.Clone(uow.removedFiles)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

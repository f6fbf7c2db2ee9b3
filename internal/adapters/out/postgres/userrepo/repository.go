package userrepo

import (
	"context"
	"errors"
	"strings"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker fileTracker
}

// fileTracker collects storage keys of attachments removed together with an account.
type fileTracker interface {
	TrackRemovedFiles(refs ...string)
}

func NewGormUserRepository(db *gorm.DB, tracker fileTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account and assigns its id.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateError(err, aggregate)
	}

	return aggregate.Identify(kernel.ID(dto.ID))
}

// Update writes every column when the stored version still matches the loaded one.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "joined_at").
		Updates(&dto)
	if result.Error != nil {
		return translateError(result.Error, aggregate)
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.ID())
	}

	return nil
}

// Get retrieves an account by id.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the account. Orders and attachments go with it through the foreign
// key cascades; their storage keys are collected first.
func (r *GormUserRepository) Delete(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var refs []string
	if err := db.Table("attachments").
		Joins("JOIN orders ON orders.id = attachments.order_id").
		Where("orders.dentist_id = ?", aggregate.ID().Int64()).
		Order("attachments.id").
		Pluck("attachments.file_ref", &refs).Error; err != nil {
		return err
	}

	result := db.Where("id = ? AND version = ?", aggregate.ID().Int64(), aggregate.Version()).Delete(&UserDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.ID())
	}

	r.tracker.TrackRemovedFiles(refs...)
	return nil
}

// FindByLogin matches username or email ignoring case, lowest id first.
func (r *GormUserRepository) FindByLogin(ctx context.Context, identifier string) ([]*user.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, nil
	}

	var dtos []UserDTO
	if err := r.db.WithContext(ctx).
		Where("lower(username) = lower(?) OR (email <> '' AND lower(email) = lower(?))", identifier, identifier).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

// UsernameTaken reports a case-insensitive clash with any account but exceptID.
func (r *GormUserRepository) UsernameTaken(ctx context.Context, username string, exceptID kernel.ID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("lower(username) = lower(?) AND id <> ?", strings.TrimSpace(username), exceptID.Int64()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormUserRepository) missingOrStale(ctx context.Context, id kernel.ID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", id.Int64()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("user", id)
	}
	return errs.NewVersionIsInvalidError("user")
}

func translateError(err error, aggregate *user.User) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewAlreadyExistsErrorWithCause("username", aggregate.Username(), err)
	}
	return err
}

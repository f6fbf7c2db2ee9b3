package orderrepo

import (
	"context"
	"errors"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker fileTracker
}

// fileTracker collects storage keys of attachments removed with an order.
type fileTracker interface {
	TrackRemovedFiles(refs ...string)
}

func NewGormOrderRepository(db *gorm.DB, tracker fileTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its attachments and assigns all identifiers.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.Identify(kernel.ID(dto.ID)); err != nil {
		return err
	}

	for i, a := range aggregate.Attachments() {
		if err := a.Identify(kernel.ID(dto.Attachments[i].ID)); err != nil {
			return err
		}
	}

	return nil
}

// Update writes details and status when the stored version still matches. Attachments
// are never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "dentist_id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.ID())
	}

	return nil
}

// Get retrieves an order with its attachments in upload order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB { return db.Order("attachments.id") }).
		First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the order; attachments follow through the foreign key cascade.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", aggregate.ID().Int64(), aggregate.Version()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.ID())
	}

	refs := make([]string, 0, len(aggregate.Attachments()))
	for _, a := range aggregate.Attachments() {
		refs = append(refs, a.File().Ref)
	}
	r.tracker.TrackRemovedFiles(refs...)
	return nil
}

func (r *GormOrderRepository) missingOrStale(ctx context.Context, id kernel.ID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Int64()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return errs.NewVersionIsInvalidError("order")
}

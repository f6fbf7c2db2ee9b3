package ports

import (
	"context"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates together with
// their attachments.
type OrderRepository interface {
	// Add persists a new order and its attachments, assigning identifiers to all of them.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists details and status. Attachments are immutable after creation.
	// A stale version fails with errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its attachments, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Delete removes the order and its attachments and reports the attachment storage
	// keys to the unit of work.
	Delete(ctx context.Context, aggregate *order.Order) error
}

package postgres

import (
	"context"
	"fmt"

	"proteseflow/internal/adapters/out/postgres/orderrepo"
	"proteseflow/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

const (
	usernameIndex          = "idx_users_username_ci"
	orderDentistForeignKey = "fk_orders_dentist"
)

// Migrate brings the schema up to date. It is safe to run on every start.
//
// Besides the tables created by AutoMigrate it ensures:
//   - usernames are unique ignoring case
//   - deleting a user deletes their orders, and deleting an order deletes its
//     attachments
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.AttachmentDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS " + usernameIndex + " ON users (lower(username))",
	).Error; err != nil {
		return fmt.Errorf("create %s: %w", usernameIndex, err)
	}

	if !db.Migrator().HasConstraint(&orderrepo.OrderDTO{}, orderDentistForeignKey) {
		if err := db.Exec(
			"ALTER TABLE orders ADD CONSTRAINT " + orderDentistForeignKey +
				" FOREIGN KEY (dentist_id) REFERENCES users (id) ON DELETE CASCADE",
		).Error; err != nil {
			return fmt.Errorf("create %s: %w", orderDentistForeignKey, err)
		}
	}

	return nil
}

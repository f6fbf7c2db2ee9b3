// Package userrepo maps the user aggregate to the users table.
package userrepo

import (
	"time"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
)

// UserDTO is the row stored in "users". A case-insensitive unique index on
// lower(username) is created by postgres.Migrate.
type UserDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(150);not null"`
	Email        string    `gorm:"type:varchar(254);not null;default:''"`
	Phone        string    `gorm:"type:varchar(20);not null;default:''"`
	PasswordHash string    `gorm:"type:varchar(128);not null"`
	Role         string    `gorm:"type:varchar(10);not null"`
	IsSuperuser  bool      `gorm:"not null;default:false"`
	State        int       `gorm:"type:smallint;not null;index"`
	License      string    `gorm:"type:varchar(30);not null;default:''"`
	Confirmed    bool      `gorm:"not null;default:false"`
	JoinedAt     time.Time `gorm:"not null"`
	Version      int       `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

// fromDomain builds the row for the next write: Version is the one the write will
// store, one above the version the aggregate was loaded with.
func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Int64(),
		Username:     u.Username(),
		Email:        u.Email(),
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsSuperuser:  u.IsSuperuser(),
		State:        int(u.State()),
		License:      u.License(),
		Confirmed:    u.IsConfirmed(),
		JoinedAt:     u.JoinedAt(),
		Version:      u.Version() + 1,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(user.Snapshot{
		ID:           kernel.ID(dto.ID),
		Username:     dto.Username,
		Email:        dto.Email,
		Phone:        dto.Phone,
		PasswordHash: dto.PasswordHash,
		Role:         role,
		Superuser:    dto.IsSuperuser,
		State:        user.AccountState(dto.State),
		License:      dto.License,
		Confirmed:    dto.Confirmed,
		JoinedAt:     dto.JoinedAt,
		Version:      dto.Version,
	})
}

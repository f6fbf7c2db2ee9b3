// Package queries contains read operations for retrieving system state.
// Handlers read straight from the database into read models; visibility rules of the
// policy package are applied in SQL so that a dentist never receives another dentist's
// rows.
package queries

import (
	"errors"
	"time"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/model/user"
)

// ErrActorIsRequired is returned when a query is built without an authenticated user.
var ErrActorIsRequired = errors.New("an authenticated, persisted user is required")

// OrderSummary is one row of an order listing.
type OrderSummary struct {
	ID              kernel.ID
	DentistID       kernel.ID
	DentistUsername string
	PatientName     string
	ServiceType     string
	ToothElements   string
	Status          order.Status
	DueDate         *time.Time
	CreatedAt       time.Time
}

// OrderView is the full read model of one order.
type OrderView struct {
	OrderSummary
	PatientSex  order.Sex
	Color       string
	Notes       string
	Attachments []AttachmentView

	// CanEditStatus and CanDelete tell clients which actions to offer the actor.
	CanEditStatus bool
	CanDelete     bool
}

type AttachmentView struct {
	ID          kernel.ID
	Name        string
	ContentType string
	Size        int64
	Description string
	UploadedAt  time.Time
}

// UserSummary is one row of an account listing.
type UserSummary struct {
	ID          kernel.ID
	Username    string
	Email       string
	Phone       string
	Role        user.Role
	License     string
	IsSuperuser bool
	Confirmed   bool
	State       user.AccountState
	JoinedAt    time.Time
}

func validateActor(actor *user.User) error {
	if actor == nil || actor.ID().IsZero() {
		return ErrActorIsRequired
	}
	return actor.Validate()
}

// orderRow is the shape shared by the order listing queries.
type orderRow struct {
	ID              int64
	DentistID       int64
	DentistUsername string
	PatientName     string
	PatientSex      string
	ServiceType     string
	ToothElements   string
	Color           string
	Notes           string
	Status          string
	DueDate         *time.Time
	CreatedAt       time.Time
}

const orderColumns = `
	orders.id,
	orders.dentist_id,
	users.username AS dentist_username,
	orders.patient_name,
	orders.patient_sex,
	orders.service_type,
	orders.tooth_elements,
	orders.color,
	orders.notes,
	orders.status,
	orders.due_date,
	orders.created_at`

func (r orderRow) summary() (OrderSummary, error) {
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:              kernel.ID(r.ID),
		DentistID:       kernel.ID(r.DentistID),
		DentistUsername: r.DentistUsername,
		PatientName:     r.PatientName,
		ServiceType:     r.ServiceType,
		ToothElements:   r.ToothElements,
		Status:          status,
		DueDate:         r.DueDate,
		CreatedAt:       r.CreatedAt,
	}, nil
}

func summaries(rows []orderRow) ([]OrderSummary, error) {
	result := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		s, err := row.summary()
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

type userRow struct {
	ID          int64
	Username    string
	Email       string
	Phone       string
	Role        string
	License     string
	IsSuperuser bool
	Confirmed   bool
	State       int
	JoinedAt    time.Time
}

func (r userRow) summary() (UserSummary, error) {
	role, err := user.ParseRole(r.Role)
	if err != nil {
		return UserSummary{}, err
	}

	return UserSummary{
		ID:          kernel.ID(r.ID),
		Username:    r.Username,
		Email:       r.Email,
		Phone:       r.Phone,
		Role:        role,
		License:     r.License,
		IsSuperuser: r.IsSuperuser,
		Confirmed:   r.Confirmed,
		State:       user.AccountState(r.State),
		JoinedAt:    r.JoinedAt,
	}, nil
}

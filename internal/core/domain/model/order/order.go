package order

import (
	"errors"
	"time"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderAlreadyIdentified is returned when the store tries to assign a second ID.
	ErrOrderAlreadyIdentified = errors.New("order already has an identifier")
)

// Order represents a prosthetic fabrication request. It is the aggregate root for the
// order's details, status and attachments.
//
// Order follows these invariants:
//   - dentistID references the owning dentist and never changes after creation
//   - details are always valid (see Details.Validate)
//   - status only changes through ChangeStatus, following the Status state machine
//   - createdAt is set once
type Order struct {
	id          kernel.ID
	dentistID   kernel.ID
	details     Details
	status      Status
	attachments []*Attachment
	createdAt   time.Time
	version     int

	isConstructed bool
}

// NewOrder creates a Pending order owned by dentistID.
//
// Example:
//
//	details, _ := order.NewDetails(order.Details{PatientName: "Maria Silva", ...})
//	o, err := order.NewOrder(dentist.ID(), details, nil)
//
// Ownership and creation rights are checked by the caller through the policy package.
func NewOrder(dentistID kernel.ID, details Details, attachments []*Attachment) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setDentist(dentistID),
		o.setDetails(details),
		o.setAttachments(attachments),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID          kernel.ID
	DentistID   kernel.ID
	Details     Details
	Status      Status
	Attachments []*Attachment
	CreatedAt   time.Time
	Version     int
}

// RestoreOrder rebuilds an order loaded from the store, re-checking every invariant.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		createdAt:     s.CreatedAt,
		version:       s.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		s.ID.Validate(),
		o.setDentist(s.DentistID),
		o.setDetails(s.Details),
		o.setStatus(s.Status),
		o.setAttachments(s.Attachments),
	); err != nil {
		return nil, err
	}

	o.id = s.ID
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Identify records the identifier assigned by the store on first insert.
func (o *Order) Identify(id kernel.ID) error {
	if !o.id.IsZero() {
		return ErrOrderAlreadyIdentified
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return o != nil && other != nil && !o.id.IsZero() && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID        { return o.id }
func (o *Order) DentistID() kernel.ID { return o.dentistID }
func (o *Order) Details() Details     { return o.details }
func (o *Order) Status() Status       { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Version() int         { return o.version }

// Attachments returns the order's files in upload order.
func (o *Order) Attachments() []*Attachment {
	return append([]*Attachment(nil), o.attachments...)
}

// Attachment finds one of the order's files by id.
func (o *Order) Attachment(id kernel.ID) (*Attachment, bool) {
	for _, a := range o.attachments {
		if a.ID().IsEqual(id) {
			return a, true
		}
	}
	return nil, false
}

// IsOwnedBy reports whether userID is the owning dentist.
func (o *Order) IsOwnedBy(userID kernel.ID) bool {
	return o.dentistID.IsEqual(userID)
}

// ChangeStatus moves the order to target. It reports false when target equals the
// current status, in which case nothing changes.
func (o *Order) ChangeStatus(target Status) (bool, error) {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return false, err
	}
	if next == o.status {
		return false, nil
	}
	o.status = next
	return true, nil
}

// EditDetails replaces the case information. Allowed in every status.
func (o *Order) EditDetails(details Details) error {
	return o.setDetails(details)
}

func (o *Order) setDentist(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dentist", err)
	}
	o.dentistID = id
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	o.details = details
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAttachments(attachments []*Attachment) error {
	for _, a := range attachments {
		if a == nil {
			return errors.New("attachment must not be nil")
		}
	}
	o.attachments = append([]*Attachment(nil), attachments...)
	return nil
}

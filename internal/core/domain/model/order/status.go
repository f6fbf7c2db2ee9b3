package order

import (
	"fmt"
	"strings"

	"proteseflow/internal/pkg/errs"
)

// Status represents the production state of an order.
//
// The usual flow is Pending -> InProduction -> Completed -> Approved, but staff may
// skip ahead, send an order back for rework or cancel it from any open status.
// Approved and Cancelled are terminal. Moving to the current status is a no-op.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending is the initial status: the lab has not started the work yet.
	Pending

	// InProduction means the CAD/production work is under way.
	InProduction

	// Completed means the piece is ready for delivery.
	Completed

	// Approved means the dentist accepted the delivered piece.
	Approved

	// Cancelled means the order was abandoned.
	Cancelled
)

func getStatusCodes() map[Status]string {
	return map[Status]string{
		Unknown:      "UNKNOWN",
		Pending:      "PENDENTE",
		InProduction: "EM_PRODUCAO",
		Completed:    "CONCLUIDO",
		Approved:     "APROVADO",
		Cancelled:    "CANCELADO",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no label
	return map[Status]string{
		Pending:      "Pendente - Aguardando Análise",
		InProduction: "Em Produção",
		Completed:    "Concluído - Pronto para Entrega",
		Approved:     "Aprovado",
		Cancelled:    "Cancelado",
	}
}

// AllStatuses returns the valid statuses in workflow order.
func AllStatuses() []Status {
	return []Status{Pending, InProduction, Completed, Approved, Cancelled}
}

// ParseStatus converts a persisted or submitted code ("PENDENTE", "EM_PRODUCAO", ...)
// into a Status. Matching is case-insensitive.
func ParseStatus(code string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, s := range AllStatuses() {
		if getStatusCodes()[s] == normalized {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate checks if the Status value is one of the five workflow statuses.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted code of the status.
func (s Status) String() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return "UNKNOWN"
}

// Label returns the display text shown to users.
func (s Status) Label() string {
	return getStatusLabels()[s]
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Cancelled
}

// TransitionTo returns target when the move from s is allowed.
//
// Allowed moves:
//   - s -> s (no-op)
//   - any non-terminal status -> any other valid status
//
// Leaving Approved or Cancelled fails with a ValueIsInvalidError on "status".
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s == target {
		return s, nil
	}

	if !s.IsTerminal() {
		return target, nil
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("cannot move from %s to %s", s.Label(), target.Label()),
	)
}

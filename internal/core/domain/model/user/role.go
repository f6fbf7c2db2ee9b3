package user

import (
	"fmt"
	"strings"

	"proteseflow/internal/pkg/errs"
)

// Role is the closed set of job functions a user can hold.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota

	// Dentist submits orders and sees only their own.
	Dentist

	// Manager is internal staff with user-management authority.
	Manager

	// CadTechnician is internal staff without user-management authority.
	CadTechnician
)

func getRoleCodes() map[Role]string {
	return map[Role]string{
		UnknownRole:   "UNKNOWN",
		Dentist:       "DENTISTA",
		Manager:       "GESTOR",
		CadTechnician: "CADISTA",
	}
}

func getRoleLabels() map[Role]string {
	//nolint:exhaustive // UnknownRole has no label
	return map[Role]string{
		Dentist:       "Dentista",
		Manager:       "Gestor",
		CadTechnician: "Cadista",
	}
}

// ParseRole converts a persisted or submitted role code ("DENTISTA", "GESTOR",
// "CADISTA", case-insensitive) into a Role.
func ParseRole(code string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for role, c := range getRoleCodes() {
		if role != UnknownRole && c == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", code))
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if _, ok := getRoleLabels()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted code of the role.
func (r Role) String() string {
	if code, ok := getRoleCodes()[r]; ok {
		return code
	}
	return "UNKNOWN"
}

// Label returns the display name of the role.
func (r Role) Label() string {
	return getRoleLabels()[r]
}

// IsStaff reports whether the role belongs to the internal team.
func (r Role) IsStaff() bool {
	return r == Manager || r == CadTechnician
}

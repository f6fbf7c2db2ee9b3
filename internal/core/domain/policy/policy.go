// Package policy holds the authorization predicates of the lab workflow. Every
// function is pure and is evaluated against the user as loaded for the current
// request: role and confirmation can change between requests, so results are
// never cached.
//
// A nil user is treated as anonymous and fails every predicate.
package policy

import (
	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/model/user"
)

// IsInternalStaff reports whether u works for the lab: superusers, managers and CAD
// technicians.
func IsInternalStaff(u *user.User) bool {
	if u == nil {
		return false
	}
	return u.IsSuperuser() || u.Role().IsStaff()
}

// IsManager reports whether u is an authenticated manager or superuser. Archived
// accounts are not authenticated.
func IsManager(u *user.User) bool {
	if !isAuthenticated(u) {
		return false
	}
	return u.HasRole(user.Manager) || u.IsSuperuser()
}

// CanCreateOrder requires a confirmed registration, or the superuser flag.
func CanCreateOrder(u *user.User) bool {
	if u == nil {
		return false
	}
	return u.IsConfirmed() || u.IsSuperuser()
}

// CanEditOrderStatus is limited to internal staff.
func CanEditOrderStatus(u *user.User) bool {
	return IsInternalStaff(u)
}

// CanViewOrder reports whether u may see o. Callers must report a failure as
// not found so the existence of other dentists' orders does not leak.
func CanViewOrder(u *user.User, o *order.Order) bool {
	if o == nil {
		return false
	}
	return CanViewOrderOwnedBy(u, o.DentistID())
}

// CanViewOrderOwnedBy is CanViewOrder for callers holding only the owner id, such
// as listings filtering rows in the store.
func CanViewOrderOwnedBy(u *user.User, dentistID kernel.ID) bool {
	if u == nil {
		return false
	}
	return IsInternalStaff(u) || u.ID().IsEqual(dentistID)
}

// CanEditOrder governs the non-status fields and follows visibility.
func CanEditOrder(u *user.User, o *order.Order) bool {
	return CanViewOrder(u, o)
}

func CanDeleteOrder(u *user.User) bool {
	return IsManager(u)
}

// CanSelectOrderOwner allows creating an order on behalf of another dentist.
func CanSelectOrderOwner(u *user.User) bool {
	return IsManager(u)
}

func CanManageUsers(u *user.User) bool {
	return IsManager(u)
}

// CanRemoveAccount guards archive, reject and purge: managers only, and never on
// their own account.
func CanRemoveAccount(actor, target *user.User) bool {
	if !CanManageUsers(actor) || target == nil {
		return false
	}
	return !actor.ID().IsEqual(target.ID())
}

func isAuthenticated(u *user.User) bool {
	return u != nil && u.IsActive()
}

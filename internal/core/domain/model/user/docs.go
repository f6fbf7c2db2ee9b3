// Package user provides the User aggregate: the identity record of dentists,
// managers and CAD technicians together with the account lifecycle.
//
// The package includes:
//   - User: the aggregate root (credentials, role, confirmation, account state)
//   - Role: closed enumeration {Dentist, Manager, CadTechnician}; superuser is an
//     orthogonal flag, not a fourth role
//   - AccountState: {Active, Archived, Deleted}; is_active and archived are derived
//     from it, so an archived account can never be active
//
// Account lifecycle:
//
//	self-registration ──> Unconfirmed ──approve──> Confirmed
//	                          │
//	                          └──reject──> Deleted
//
//	Active ──archive──> Archived ──restore──> Active
//	                       │
//	                       └──purge──> Deleted
//
// Confirmation and archival are independent: restoring an account brings back the
// confirmation state it had before it was archived.
package user

// Package order provides the Order aggregate ("pedido"): a fabrication request for a
// dental prosthetic submitted by a dentist and produced by the lab staff.
//
// The package includes:
//   - Order: the aggregate root holding the owning dentist, case details, status and
//     attachments
//   - Status: the production state machine
//   - Details: patient and service information editable after creation
//   - Attachment: a file stored alongside the order at creation time
//
// Key business rules:
//   - Orders always start Pending
//   - The owning dentist is fixed at creation
//   - Status may move from any open status to any other status; Approved and
//     Cancelled are terminal
//   - Details stay editable in every status
//
// Who may perform each change is decided by the policy package, not here.
package order

// Package kernel provides the primitives shared by the user and order aggregates.
//
// The package includes:
//   - ID: the store-assigned surrogate key of users, orders and attachments
//
// IDs are plain int64 values wrapped in a named type so that validation and
// parsing from request paths live in one place.
package kernel

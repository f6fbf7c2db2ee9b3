// Package services provides domain services: rules that need more than one aggregate
// instance to decide.
//
// The package includes:
//   - LoginResolver: picks the account a login identifier refers to when usernames and
//     emails of several accounts collide
package services

// Package services provides domain services that coordinate business rules
// spanning multiple domain entities in the parcel service.
//
// The package includes:
//   - AccessPolicy: authorization predicates combining the caller's principal
//     with the loaded parcel aggregate (ownership, custody)
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"parcel/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// StatusRepoFactory provides access to the status catalog within a transaction.
	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	// HandlerRepoFactory provides access to the handler repository within a transaction.
	HandlerRepoFactory interface {
		HandlerRepository() ports.HandlerRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	// Used by commands that mutate the parcel aggregate without touching
	// handler records (create, receive, cancel, update).
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		StatusRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// UoW manages transactions for commands that read handler records while
	// mutating the parcel aggregate (assignment, delivery close-out).
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   parcelRepo := uow.ParcelRepository()
	//   handlerRepo := uow.HandlerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ParcelRepoFactory
		StatusRepoFactory
		HandlerRepoFactory
	}

	// UoWFactory creates new unit of work instances for handler-aware operations.
	UoWFactory interface {
		Create() UoW
	}
)

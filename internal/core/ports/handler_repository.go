package ports

import (
	"context"

	"parcel/internal/core/domain/model/handler"
	"parcel/internal/core/domain/model/kernel"
)

// HandlerRepository resolves field handler records. Handler lifecycle
// (onboarding, offboarding) is owned by the identity side; the parcel service
// only reads.
type HandlerRepository interface {
	// Get retrieves a handler by its record identifier together with the
	// backing user's name and phone.
	Get(ctx context.Context, id kernel.UUID) (*handler.Handler, error)

	// GetByUserID retrieves the handler record backed by the given user
	// account. Used to resolve the caller of delivery-side operations.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*handler.Handler, error)
}

// Package handlerrepo reads field handler records. A handler is the join of a
// package_handlers row with its backing users row; the parcel service never
// writes either table.
package handlerrepo

import (
	"context"
	"database/sql"
	"errors"

	"parcel/internal/core/domain/model/handler"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormHandlerRepository implements HandlerRepository using GORM.
type GormHandlerRepository struct {
	db *gorm.DB
}

// NewGormHandlerRepository creates a new GORM handler repository.
func NewGormHandlerRepository(db *gorm.DB) *GormHandlerRepository {
	return &GormHandlerRepository{db: db}
}

// Get retrieves a handler by its record identifier.
func (r *GormHandlerRepository) Get(ctx context.Context, id kernel.UUID) (*handler.Handler, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.get(ctx, "ph.id = ?", id.Bytes(), "handlerId", id.String())
}

// GetByUserID retrieves the handler record backed by the given user account.
func (r *GormHandlerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*handler.Handler, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return r.get(ctx, "ph.user_id = ?", userID.Bytes(), "userId", userID.String())
}

func (r *GormHandlerRepository) get(ctx context.Context, where string, arg uuid.UUID, paramName, paramValue string) (*handler.Handler, error) {
	row := r.db.WithContext(ctx).Raw(`
		SELECT
			ph.id,
			ph.user_id,
			u.name,
			u.phone,
			ph.role
		FROM package_handlers ph
		JOIN users u ON u.id = ph.user_id
		WHERE `+where, arg).Row()

	var (
		id, userID uuid.UUID
		name       string
		phone      string
		role       string
	)
	if err := row.Scan(&id, &userID, &name, &phone, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError(paramName, paramValue)
		}
		return nil, err
	}

	handlerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	handlerUserID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return nil, err
	}

	return handler.NewHandler(handlerID, handlerUserID, name, phone, handler.ParseRole(role))
}

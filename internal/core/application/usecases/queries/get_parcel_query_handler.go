package queries

import (
	"context"

	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves a single parcel read model by tracking
// number.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single parcel queries.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no parcel
// carries the tracking number.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	sqlText, args := buildParcelSelect(query.Hydration())
	sqlText += ` WHERE p.tracking_number = ?`
	args = append(args, query.TrackingNumber().String())

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return ParcelResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelResponse{}, err
		}
		return ParcelResponse{}, errs.NewObjectNotFoundError("parcelNumber", query.TrackingNumber().String())
	}

	resp, err := scanParcelRow(rows, query.Hydration())
	if err != nil {
		return ParcelResponse{}, err
	}

	return resp, nil
}

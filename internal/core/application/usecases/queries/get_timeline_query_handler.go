package queries

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTimelineQueryHandler retrieves a parcel's tracking history from the
// database.
type GetTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetTimelineQueryHandler creates a handler for timeline queries.
func NewGetTimelineQueryHandler(db *gorm.DB) GetTimelineQueryHandler {
	return GetTimelineQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no parcel
// carries the tracking number; a known parcel always has at least its
// creation entry.
func (h GetTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetTimelineQuery,
) ([]TimelineEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var parcelID uuid.UUID
	err := h.db.WithContext(ctx).
		Raw(`SELECT id FROM parcels WHERE tracking_number = ?`, query.TrackingNumber().String()).
		Scan(&parcelID).Error
	if err != nil {
		return nil, err
	}
	if parcelID == (uuid.UUID{}) {
		return nil, errs.NewObjectNotFoundError("parcelNumber", query.TrackingNumber().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.message,
			s.name,
			t.created_at
		FROM parcel_timeline_entries t
		JOIN statuses s ON s.id = t.status_id
		WHERE t.parcel_id = ?
		ORDER BY t.created_at, t.id
	`, parcelID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]TimelineEntryResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			message    string
			statusName string
			createdAt  time.Time
		)
		if err = rows.Scan(&id, &message, &statusName, &createdAt); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		entries = append(entries, TimelineEntryResponse{
			ID:        entryID,
			Message:   message,
			Status:    status.Name(statusName),
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

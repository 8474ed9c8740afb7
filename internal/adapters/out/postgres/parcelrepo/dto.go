// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. This package implements the repository pattern for the
// parcel domain aggregate, handling the conversion between domain entities and
// database representations. The parcel row and its timeline entries are always
// written inside the same transaction.
package parcelrepo

import (
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The tracking number carries a unique index; a duplicate insert
// surfaces as a conflict to the caller.
type ParcelDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber string     `gorm:"uniqueIndex;size:32"`
	RequesterID    uuid.UUID  `gorm:"type:uuid;index"`
	ShopID         uuid.UUID  `gorm:"type:uuid"`
	CategoryID     uuid.UUID  `gorm:"type:uuid"`
	PickupID       uuid.UUID  `gorm:"type:uuid"`
	DeliveryAreaID uuid.UUID  `gorm:"type:uuid"`
	StatusID       uuid.UUID  `gorm:"type:uuid;index"`
	HandlerID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// TimelineEntryDTO represents one append-only timeline row. Rows are never
// updated or deleted.
type TimelineEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;index"`
	Message   string
	StatusID  uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName specifies the database table name for timeline entries.
func (TimelineEntryDTO) TableName() string {
	return "parcel_timeline_entries"
}

// fromDomain converts a parcel domain aggregate to its database
// representation. Pending timeline entries are converted separately.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var handlerID *uuid.UUID
	if id := aggregate.HandlerID(); id != nil {
		raw := id.Bytes()
		handlerID = &raw
	}

	return ParcelDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		RequesterID:    aggregate.RequesterID().Bytes(),
		ShopID:         aggregate.ShopID().Bytes(),
		CategoryID:     aggregate.CategoryID().Bytes(),
		PickupID:       aggregate.PickupID().Bytes(),
		DeliveryAreaID: aggregate.DeliveryAreaID().Bytes(),
		StatusID:       aggregate.Status().ID().Bytes(),
		HandlerID:      handlerID,
	}
}

// timelineFromDomain converts the aggregate's pending timeline entries to
// database rows.
func timelineFromDomain(entries []parcel.TimelineEntry) []TimelineEntryDTO {
	dtos := make([]TimelineEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, TimelineEntryDTO{
			ID:        entry.ID().Bytes(),
			ParcelID:  entry.ParcelID().Bytes(),
			Message:   entry.Message(),
			StatusID:  entry.StatusID().Bytes(),
			CreatedAt: entry.CreatedAt(),
		})
	}
	return dtos
}

// toDomain converts a database DTO to a parcel domain aggregate. The status
// name is resolved by the repository, the DTO row only carries the id.
func toDomain(dto ParcelDTO, statusName status.Name) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := parcel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	pickupID, err := kernel.UUIDFromBytes(dto.PickupID[:])
	if err != nil {
		return nil, err
	}

	deliveryAreaID, err := kernel.UUIDFromBytes(dto.DeliveryAreaID[:])
	if err != nil {
		return nil, err
	}

	statusID, err := kernel.UUIDFromBytes(dto.StatusID[:])
	if err != nil {
		return nil, err
	}

	st, err := status.NewStatus(statusID, statusName)
	if err != nil {
		return nil, err
	}

	var handlerID *kernel.UUID
	if dto.HandlerID != nil {
		hID, handlerErr := kernel.UUIDFromBytes((*dto.HandlerID)[:])
		if handlerErr != nil {
			return nil, handlerErr
		}

		handlerID = &hID
	}

	return parcel.RestoreParcel(
		id, trackingNumber, requesterID,
		shopID, categoryID, pickupID, deliveryAreaID,
		st, handlerID,
	)
}

// timelineToDomain converts timeline rows back to domain entries.
func timelineToDomain(dtos []TimelineEntryDTO) ([]parcel.TimelineEntry, error) {
	entries := make([]parcel.TimelineEntry, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
		if err != nil {
			return nil, err
		}

		statusID, err := kernel.UUIDFromBytes(dto.StatusID[:])
		if err != nil {
			return nil, err
		}

		entry, err := parcel.NewTimelineEntry(id, parcelID, dto.Message, statusID, dto.CreatedAt)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

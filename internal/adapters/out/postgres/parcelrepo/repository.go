package parcelrepo

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// parcelColumns lists the mutable parcel columns written on Update. Explicit
// so a nil handler id actually clears the stored link; a struct update would
// skip the zero value.
var parcelColumns = []string{
	"shop_id", "category_id", "pickup_id", "delivery_area_id",
	"status_id", "handler_id", "updated_at",
}

// Add saves a new parcel and its pending timeline entries.
// A tracking number collision is reported as errs.ConflictError.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("parcelNumber", err)
		}
		return err
	}

	if err := r.appendTimeline(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel and appends its pending timeline entries.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select(parcelColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.appendTimeline(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by its internal identifier.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// GetByTrackingNumber retrieves a parcel by its tracking number.
func (r *GormParcelRepository) GetByTrackingNumber(ctx context.Context, trackingNumber parcel.TrackingNumber) (*parcel.Parcel, error) {
	return r.getByTrackingNumber(ctx, trackingNumber, false)
}

// GetByTrackingNumberForUpdate retrieves a parcel and locks its row until the
// surrounding transaction ends. Concurrent transitions on the same parcel
// queue on this lock, so the second one loads the first one's result.
func (r *GormParcelRepository) GetByTrackingNumberForUpdate(ctx context.Context, trackingNumber parcel.TrackingNumber) (*parcel.Parcel, error) {
	return r.getByTrackingNumber(ctx, trackingNumber, true)
}

// GetTimeline retrieves a parcel's timeline entries, oldest first.
func (r *GormParcelRepository) GetTimeline(ctx context.Context, parcelID kernel.UUID) ([]parcel.TimelineEntry, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TimelineEntryDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return timelineToDomain(dtos)
}

func (r *GormParcelRepository) getByTrackingNumber(ctx context.Context, trackingNumber parcel.TrackingNumber, forUpdate bool) (*parcel.Parcel, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ParcelDTO
	if err := tx.First(&dto, "tracking_number = ?", trackingNumber.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcelNumber", trackingNumber.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

func (r *GormParcelRepository) restore(ctx context.Context, dto ParcelDTO) (*parcel.Parcel, error) {
	var statusName string
	err := r.db.WithContext(ctx).
		Raw(`SELECT name FROM statuses WHERE id = ?`, dto.StatusID).
		Scan(&statusName).Error
	if err != nil {
		return nil, err
	}
	if statusName == "" {
		return nil, errs.NewObjectNotFoundError("status", dto.StatusID.String())
	}

	return toDomain(dto, status.Name(statusName))
}

func (r *GormParcelRepository) appendTimeline(ctx context.Context, aggregate *parcel.Parcel) error {
	entries := aggregate.PendingTimeline()
	if len(entries) == 0 {
		return nil
	}

	dtos := timelineFromDomain(entries)
	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	aggregate.DrainTimeline()
	return nil
}

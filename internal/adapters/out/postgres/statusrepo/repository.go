package statusrepo

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStatusRepository implements StatusRepository directly against the
// database. Command paths normally go through CachedStatusRepository instead.
type GormStatusRepository struct {
	db *gorm.DB
}

// NewGormStatusRepository creates a new GORM status repository.
func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// GetByName resolves a catalog entry by its lifecycle name.
func (r *GormStatusRepository) GetByName(ctx context.Context, name status.Name) (status.Status, error) {
	if err := name.Validate(); err != nil {
		return status.Status{}, err
	}

	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", string(name)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return status.Status{}, errs.NewObjectNotFoundError("status", string(name))
		}
		return status.Status{}, err
	}

	return toDomain(dto)
}

// GetAll returns the full catalog.
func (r *GormStatusRepository) GetAll(ctx context.Context) ([]status.Status, error) {
	var dtos []StatusDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	statuses := make([]status.Status, 0, len(dtos))
	for _, dto := range dtos {
		st, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}

	return statuses, nil
}

// Seed inserts the known lifecycle names that are missing from the catalog.
// Existing rows keep their identifiers; seeding is idempotent.
func (r *GormStatusRepository) Seed(ctx context.Context) error {
	for _, name := range status.KnownNames() {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&StatusDTO{}).
			Where("name = ?", string(name)).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		dto := StatusDTO{ID: uuid.New(), Name: string(name)}
		if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
	}

	return nil
}

// Package statusrepo persists the administrator-seeded status catalog and
// provides a cached read path for it. The catalog is tiny and read on every
// lifecycle transition, so the cached repository serves resolution from
// memory and is refreshed out of band.
package statusrepo

import (
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// StatusDTO represents one catalog row.
type StatusDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex;size:32"`
}

// TableName specifies the database table name for catalog entries.
func (StatusDTO) TableName() string {
	return "statuses"
}

// toDomain converts a catalog row to the domain entity.
func toDomain(dto StatusDTO) (status.Status, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return status.Status{}, err
	}

	return status.NewStatus(id, status.Name(dto.Name))
}

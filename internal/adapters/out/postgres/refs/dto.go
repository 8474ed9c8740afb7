// Package refs holds the relational rows the parcel service reads but does
// not manage: user accounts, shops, pickup addresses, and delivery areas.
// Their lifecycle belongs to the identity and merchant-onboarding sides; the
// parcel service migrates the tables for local development and joins them for
// hydrated read models.
package refs

import (
	"github.com/google/uuid"
)

// UserDTO represents an account row. Merchants, admins, and package handlers
// all live here; the parcel service reads name and phone for hydration and
// for handler timeline messages.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Phone string `gorm:"size:32"`
}

// TableName specifies the database table name for accounts.
func (UserDTO) TableName() string {
	return "users"
}

// ShopDTO represents a merchant's shop.
type ShopDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;index"`
	Name   string
}

// TableName specifies the database table name for shops.
func (ShopDTO) TableName() string {
	return "shops"
}

// PickupAddressDTO represents a registered pickup location.
type PickupAddressDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;index"`
	Address string
}

// TableName specifies the database table name for pickup addresses.
func (PickupAddressDTO) TableName() string {
	return "pickup_addresses"
}

// DeliveryAreaDTO represents a serviced delivery area with its district and
// division names denormalized for display.
type DeliveryAreaDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	District string
	Division string
}

// TableName specifies the database table name for delivery areas.
func (DeliveryAreaDTO) TableName() string {
	return "delivery_areas"
}

// CategoryDTO represents a product category referenced by parcels.
type CategoryDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// PackageHandlerDTO represents a field handler record linking a user account
// to a handler role.
type PackageHandlerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Role   string    `gorm:"size:32"`
}

// TableName specifies the database table name for handler records.
func (PackageHandlerDTO) TableName() string {
	return "package_handlers"
}

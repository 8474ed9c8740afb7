// Package queries contains read operations over the parcel store. Query
// handlers bypass the domain aggregates and read with raw SQL for optimal
// read performance in the CQRS pattern; hydration flags drive which reference
// tables are joined in.
package queries

import (
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"
)

// Hydration selects which reference entities a parcel read model carries.
// Every flag adds one LEFT JOIN; with all flags off a query touches only the
// parcels and statuses tables.
type Hydration struct {
	Pickup       bool
	Shop         bool
	DeliveryArea bool
	Requester    bool
}

// PickupView is the hydrated pickup address.
type PickupView struct {
	ID      kernel.UUID
	Address string
}

// ShopView is the hydrated shop.
type ShopView struct {
	ID   kernel.UUID
	Name string
}

// DeliveryAreaView is the hydrated delivery area with its district and
// division display names.
type DeliveryAreaView struct {
	ID       kernel.UUID
	Name     string
	District string
	Division string
}

// UserView is the hydrated requester account.
type UserView struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// ParcelResponse is the parcel read model served by the listing and single
// parcel queries. Hydrated views are nil unless their flag was requested.
type ParcelResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Status         status.Name
	RequesterID    kernel.UUID
	ShopID         kernel.UUID
	CategoryID     kernel.UUID
	PickupID       kernel.UUID
	DeliveryAreaID kernel.UUID
	HandlerID      *kernel.UUID
	CreatedAt      time.Time

	Pickup       *PickupView
	Shop         *ShopView
	DeliveryArea *DeliveryAreaView
	Requester    *UserView
}

// TimelineEntryResponse is one row of a parcel's tracking history.
type TimelineEntryResponse struct {
	ID        kernel.UUID
	Message   string
	Status    status.Name
	CreatedAt time.Time
}

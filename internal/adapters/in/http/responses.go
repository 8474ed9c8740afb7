package http

import (
	"time"

	"parcel/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedParcelResponse returns the tracking number assigned to a new parcel.
type CreatedParcelResponse struct {
	ParcelNumber string `json:"parcelNumber"`
}

// PickupResponse is the hydrated pickup address view.
type PickupResponse struct {
	ID      uuid.UUID `json:"id"`
	Address string    `json:"address"`
}

// ShopResponse is the hydrated shop view.
type ShopResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// DeliveryAreaResponse is the hydrated delivery area view.
type DeliveryAreaResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	District string    `json:"district"`
	Division string    `json:"division"`
}

// UserResponse is the hydrated requester account view.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// ParcelResponse is the parcel read model as served over HTTP. Hydrated views
// are omitted unless their flag was requested.
type ParcelResponse struct {
	ID             uuid.UUID  `json:"id"`
	ParcelNumber   string     `json:"parcelNumber"`
	Status         string     `json:"status"`
	RequesterID    uuid.UUID  `json:"requesterId"`
	ShopID         uuid.UUID  `json:"shopId"`
	CategoryID     uuid.UUID  `json:"categoryId"`
	PickupID       uuid.UUID  `json:"pickupId"`
	DeliveryAreaID uuid.UUID  `json:"deliveryAreaId"`
	HandlerID      *uuid.UUID `json:"handlerId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`

	Pickup       *PickupResponse       `json:"pickup,omitempty"`
	Shop         *ShopResponse         `json:"shop,omitempty"`
	DeliveryArea *DeliveryAreaResponse `json:"deliveryArea,omitempty"`
	Requester    *UserResponse         `json:"parcelUser,omitempty"`
}

// TimelineEntryResponse is one row of a parcel's tracking history.
type TimelineEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toParcelResponse(view queries.ParcelResponse) ParcelResponse {
	response := ParcelResponse{
		ID:             view.ID.Bytes(),
		ParcelNumber:   view.TrackingNumber,
		Status:         view.Status.String(),
		RequesterID:    view.RequesterID.Bytes(),
		ShopID:         view.ShopID.Bytes(),
		CategoryID:     view.CategoryID.Bytes(),
		PickupID:       view.PickupID.Bytes(),
		DeliveryAreaID: view.DeliveryAreaID.Bytes(),
		CreatedAt:      view.CreatedAt,
	}

	if view.HandlerID != nil {
		googleUUID := view.HandlerID.Bytes()
		response.HandlerID = &googleUUID
	}
	if view.Pickup != nil {
		response.Pickup = &PickupResponse{
			ID:      view.Pickup.ID.Bytes(),
			Address: view.Pickup.Address,
		}
	}
	if view.Shop != nil {
		response.Shop = &ShopResponse{
			ID:   view.Shop.ID.Bytes(),
			Name: view.Shop.Name,
		}
	}
	if view.DeliveryArea != nil {
		response.DeliveryArea = &DeliveryAreaResponse{
			ID:       view.DeliveryArea.ID.Bytes(),
			Name:     view.DeliveryArea.Name,
			District: view.DeliveryArea.District,
			Division: view.DeliveryArea.Division,
		}
	}
	if view.Requester != nil {
		response.Requester = &UserResponse{
			ID:    view.Requester.ID.Bytes(),
			Name:  view.Requester.Name,
			Phone: view.Requester.Phone,
		}
	}

	return response
}

func toParcelResponses(views []queries.ParcelResponse) []ParcelResponse {
	response := make([]ParcelResponse, len(views))
	for i, view := range views {
		response[i] = toParcelResponse(view)
	}
	return response
}

func toTimelineResponses(views []queries.TimelineEntryResponse) []TimelineEntryResponse {
	response := make([]TimelineEntryResponse, len(views))
	for i, view := range views {
		response[i] = TimelineEntryResponse{
			ID:        view.ID.Bytes(),
			Message:   view.Message,
			Status:    view.Status.String(),
			CreatedAt: view.CreatedAt,
		}
	}
	return response
}

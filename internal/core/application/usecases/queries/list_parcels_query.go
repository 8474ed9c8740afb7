package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery retrieves parcels matching a set of optional filters. It
// backs every listing surface: a merchant's own parcels (requester filter),
// the admin overview (no filters), and the field handler worklists (handler
// listing status filter).
type ListParcelsQuery struct {
	requesterID *kernel.UUID
	shopID      *kernel.UUID
	handlerID   *kernel.UUID
	statusName  *status.Name
	hydration   Hydration

	guard guard.ConstructorGuard
}

// NewListParcelsQuery creates a listing query. All filters are optional and
// combine with AND.
func NewListParcelsQuery(
	requesterID, shopID, handlerID *kernel.UUID,
	statusName *status.Name,
	hydration Hydration,
) (ListParcelsQuery, error) {
	q := ListParcelsQuery{
		hydration: hydration,
		guard:     guard.NewConstructorGuard(),
	}

	for name, id := range map[string]*kernel.UUID{
		"requesterId": requesterID,
		"shopId":      shopID,
		"handlerId":   handlerID,
	} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return ListParcelsQuery{}, errs.NewValueIsInvalidErrorWithCause(name, err)
		}
	}
	if statusName != nil {
		if err := statusName.Validate(); err != nil {
			return ListParcelsQuery{}, err
		}
	}

	q.requesterID = requesterID
	q.shopID = shopID
	q.handlerID = handlerID
	q.statusName = statusName
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// RequesterID returns the requester filter, or nil.
func (q ListParcelsQuery) RequesterID() *kernel.UUID {
	return q.requesterID
}

// ShopID returns the shop filter, or nil.
func (q ListParcelsQuery) ShopID() *kernel.UUID {
	return q.shopID
}

// HandlerID returns the assigned handler filter, or nil.
func (q ListParcelsQuery) HandlerID() *kernel.UUID {
	return q.handlerID
}

// StatusName returns the status filter, or nil.
func (q ListParcelsQuery) StatusName() *status.Name {
	return q.statusName
}

// Hydration returns the requested hydration set.
func (q ListParcelsQuery) Hydration() Hydration {
	return q.hydration
}

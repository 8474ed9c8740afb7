// Package handler models field package handlers: the pickupmen and deliverymen
// who take physical custody of parcels. Handler identity lifecycle is managed
// outside the lifecycle engine; the engine only reads handlers when linking
// them to parcels.
package handler

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

var (
	// ErrHandlerIsNotConstructed is returned when a Handler instance was not
	// created through the NewHandler factory method.
	ErrHandlerIsNotConstructed = errors.New("Handler must be created via NewHandler constructor")

	// ErrRoleIsNotAssignable is returned when constructing a handler whose
	// role cannot take custody of parcels.
	ErrRoleIsNotAssignable = errors.New("handler role must be pickupman or deliveryman")
)

// Handler is a field worker who can be linked to parcels. It references the
// person account behind the worker (userID) and denormalizes the contact
// details the timeline messages need.
//
// Handler is read-only from the lifecycle engine's perspective: many parcels
// may reference one handler over time, but the engine never mutates handlers.
type Handler struct {
	id     kernel.UUID
	userID kernel.UUID
	name   string
	phone  string
	role   Role

	isConstructed bool
}

// NewHandler creates a Handler with validation. The role must be one of the
// two assignable field roles.
func NewHandler(id, userID kernel.UUID, name, phone string, role Role) (*Handler, error) {
	h := &Handler{isConstructed: true}

	if err := errors.Join(
		h.setID(id),
		h.setUserID(userID),
		h.setName(name),
		h.setRole(role),
	); err != nil {
		return nil, err
	}

	h.phone = phone
	return h, nil
}

// Validate ensures the Handler instance was properly constructed through
// NewHandler.
func (h *Handler) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHandlerIsNotConstructed
	}
	return nil
}

// ID returns the handler's unique identifier.
func (h *Handler) ID() kernel.UUID {
	return h.id
}

// UserID returns the identifier of the person account behind the handler.
func (h *Handler) UserID() kernel.UUID {
	return h.userID
}

// Name returns the handler's display name.
func (h *Handler) Name() string {
	return h.name
}

// Phone returns the handler's contact phone number.
func (h *Handler) Phone() string {
	return h.phone
}

// Role returns the handler's field role.
func (h *Handler) Role() Role {
	return h.role
}

// IsEqual compares two handlers by their unique identifiers.
func (h *Handler) IsEqual(other *Handler) bool {
	return other != nil && h.id.IsEqual(other.id)
}

func (h *Handler) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *Handler) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	h.userID = userID
	return nil
}

func (h *Handler) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("handler name")
	}
	h.name = name
	return nil
}

func (h *Handler) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !role.Assignable() {
		return ErrRoleIsNotAssignable
	}
	h.role = role
	return nil
}

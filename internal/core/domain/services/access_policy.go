package services

import (
	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/errs"
)

// AccessPolicy is the domain service holding the authorization predicates for
// parcel operations. Route middleware gates coarse role access; the policy
// decides the per-parcel questions that need the loaded aggregate, such as
// ownership and current custody.
//
// Identity is established upstream (JWT middleware); the policy only reasons
// about the Principal it is handed.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanCreate permits merchants to request pickups.
func (AccessPolicy) CanCreate(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if !principal.HasRole(account.RoleMerchant) {
		return errs.NewNotAuthorizedError("create parcel")
	}
	return nil
}

// CanCancel permits only the requesting merchant to withdraw their parcel.
// Cancellation is a requester right: admins are not granted it, their manual
// correction path is the status override.
func (AccessPolicy) CanCancel(principal account.Principal, p *parcel.Parcel) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if principal.HasRole(account.RoleMerchant) && principal.ID.IsEqual(p.RequesterID()) {
		return nil
	}
	return errs.NewNotAuthorizedError("cancel parcel")
}

// CanAssign permits admins to hand a parcel to a field handler.
func (AccessPolicy) CanAssign(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if !principal.HasRole(account.RoleAdmin) {
		return errs.NewNotAuthorizedError("assign handler")
	}
	return nil
}

// CanReceive permits admins to take a parcel back into warehouse custody.
func (AccessPolicy) CanReceive(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if !principal.HasRole(account.RoleAdmin) {
		return errs.NewNotAuthorizedError("receive parcel")
	}
	return nil
}

// CanUpdate permits admins to merge parcel fields and force statuses.
func (AccessPolicy) CanUpdate(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if !principal.HasRole(account.RoleAdmin) {
		return errs.NewNotAuthorizedError("update parcel")
	}
	return nil
}

// CanMarkDelivered permits the field handler currently holding the parcel to
// close the delivery. handlerID is the handler record resolved for the
// caller's user account; a parcel outside any handler's custody cannot be
// marked delivered by anyone.
func (AccessPolicy) CanMarkDelivered(principal account.Principal, p *parcel.Parcel, handlerID kernel.UUID) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if !principal.HasRole(account.RolePackageHandler) {
		return errs.NewNotAuthorizedError("mark parcel delivered")
	}
	if p.HandlerID() == nil || !p.HandlerID().IsEqual(handlerID) {
		return errs.NewNotAuthorizedError("mark parcel delivered")
	}
	return nil
}

// CanView permits admins to read any parcel and merchants to read their own.
// Field handlers read through their dedicated listing routes, which filter by
// assignment instead.
func (AccessPolicy) CanView(principal account.Principal, p *parcel.Parcel) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if principal.HasRole(account.RoleAdmin) {
		return nil
	}
	if principal.HasRole(account.RoleMerchant) && principal.ID.IsEqual(p.RequesterID()) {
		return nil
	}
	return errs.NewNotAuthorizedError("view parcel")
}

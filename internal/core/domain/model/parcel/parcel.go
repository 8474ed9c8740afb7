// Package parcel models the parcel aggregate: the shipment tracked end-to-end
// by a tracking number, its lifecycle status, its optional field handler link,
// and the append-only timeline written on every transition.
//
// The aggregate is the sole authority over status and handler changes. Two
// invariants hold unconditionally, regardless of which transition runs:
//
//  1. The status written must be a resolved Status Catalog entry; transitions
//     receive catalog entries, never bare names.
//  2. The handler link is set if and only if the status is a custody state
//     (picked_up or in_transit). Receive, MarkDelivered, and Cancel always
//     clear the link; AssignTo always sets it.
//
// Transition preconditions beyond these two are deliberately narrow but
// explicit: assignment is legal only from the state the role picks up from,
// so two racing assignments cannot both succeed once the store serializes
// them on the parcel row.
package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcel/internal/core/domain/model/handler"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

	// ErrIllegalTransition is returned when a transition would violate the
	// aggregate's invariants: assigning from a state the role cannot pick up
	// from, delivering a parcel that is not in transit, receiving or
	// cancelling a finished parcel, or forcing a custody status without a
	// handler.
	ErrIllegalTransition = errors.New("illegal parcel transition")
)

// Timeline messages written by the lifecycle transitions. The texts are part
// of the customer-facing tracking history.
const (
	msgPickupRequested = "The merchant has requested the parcel to be picked up"
	msgReceived        = "Parcel has been received by us. We are processing it."
	msgDelivered       = "Parcel has been delivered. Thank you for using our service."
	msgCancelled       = "Parcel has been cancelled"
)

// Parcel is the aggregate root for a single shipment. All fields are private;
// state changes only through the transition methods, each of which appends a
// timeline entry that the repository persists atomically with the parcel row.
type Parcel struct {
	id             kernel.UUID
	trackingNumber TrackingNumber
	requesterID    kernel.UUID
	shopID         kernel.UUID
	categoryID     kernel.UUID
	pickupID       kernel.UUID
	deliveryAreaID kernel.UUID
	status         status.Status
	handlerID      *kernel.UUID

	// pendingTimeline holds entries appended by transitions since the last
	// persist; the repository writes and then drains them.
	pendingTimeline []TimelineEntry

	isConstructed bool
}

// NewParcel creates a parcel for a merchant's pickup request. The status is
// forced to pending and no handler is linked, regardless of what the request
// carried; the caller passes the resolved pending catalog entry. Exactly one
// timeline entry is appended recording the request.
func NewParcel(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	requesterID kernel.UUID,
	shopID kernel.UUID,
	categoryID kernel.UUID,
	pickupID kernel.UUID,
	deliveryAreaID kernel.UUID,
	pending status.Status,
) (*Parcel, error) {
	p := &Parcel{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setRequesterID(requesterID),
		p.setReference(&p.shopID, shopID, "shopId"),
		p.setReference(&p.categoryID, categoryID, "categoryId"),
		p.setReference(&p.pickupID, pickupID, "pickupId"),
		p.setReference(&p.deliveryAreaID, deliveryAreaID, "deliveryAreaId"),
	); err != nil {
		return nil, err
	}

	if err := pending.Validate(); err != nil {
		return nil, err
	}
	if pending.Name() != status.Pending {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("new parcels start as %q, got %q", status.Pending, pending.Name()))
	}

	p.status = pending
	if err := p.appendTimeline(msgPickupRequested); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistent storage. The restored
// state must already satisfy the handler-custody invariant; storage rows that
// do not are data corruption and fail restoration.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	requesterID kernel.UUID,
	shopID kernel.UUID,
	categoryID kernel.UUID,
	pickupID kernel.UUID,
	deliveryAreaID kernel.UUID,
	st status.Status,
	handlerID *kernel.UUID,
) (*Parcel, error) {
	p := &Parcel{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setRequesterID(requesterID),
		p.setReference(&p.shopID, shopID, "shopId"),
		p.setReference(&p.categoryID, categoryID, "categoryId"),
		p.setReference(&p.pickupID, pickupID, "pickupId"),
		p.setReference(&p.deliveryAreaID, deliveryAreaID, "deliveryAreaId"),
	); err != nil {
		return nil, err
	}

	if err := st.Validate(); err != nil {
		return nil, err
	}
	if handlerID != nil {
		if err := handlerID.Validate(); err != nil {
			return nil, err
		}
	}
	if (handlerID != nil) != st.Name().InCustody() {
		return nil, errs.NewValueIsInvalidErrorWithCause("handler",
			fmt.Errorf("status %q and handler presence %t are inconsistent", st.Name(), handlerID != nil))
	}

	p.status = st
	p.handlerID = handlerID
	return p, nil
}

// Validate ensures the Parcel instance was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// ID returns the parcel's internal identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the parcel's human-facing identity.
func (p *Parcel) TrackingNumber() TrackingNumber {
	return p.trackingNumber
}

// RequesterID returns the merchant account that created the parcel.
func (p *Parcel) RequesterID() kernel.UUID {
	return p.requesterID
}

// ShopID returns the shop the pickup was requested for.
func (p *Parcel) ShopID() kernel.UUID {
	return p.shopID
}

// CategoryID returns the product category reference.
func (p *Parcel) CategoryID() kernel.UUID {
	return p.categoryID
}

// PickupID returns the pickup address reference.
func (p *Parcel) PickupID() kernel.UUID {
	return p.pickupID
}

// DeliveryAreaID returns the delivery area reference.
func (p *Parcel) DeliveryAreaID() kernel.UUID {
	return p.deliveryAreaID
}

// Status returns the parcel's current catalog status.
func (p *Parcel) Status() status.Status {
	return p.status
}

// HandlerID returns the currently linked field handler, or nil when the
// parcel is not in a handler's custody.
func (p *Parcel) HandlerID() *kernel.UUID {
	return p.handlerID
}

// PendingTimeline returns the timeline entries appended since the last
// persist, oldest first.
func (p *Parcel) PendingTimeline() []TimelineEntry {
	return p.pendingTimeline
}

// DrainTimeline clears the pending timeline entries. Repositories call it
// after writing the entries inside the same transaction as the parcel row.
func (p *Parcel) DrainTimeline() {
	p.pendingTimeline = nil
}

// IsEqual compares two parcels by their internal identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// AssignTo links a field handler to the parcel and moves it into the role's
// target status. A pickupman takes a pending parcel into picked_up; a
// deliveryman takes a picked_up parcel into in_transit. Any other starting
// state fails with ErrIllegalTransition, which is also what the loser of two
// racing assignments observes after the store serializes them.
//
// The target catalog entry must match the role's target status; a mismatch is
// a programming error surfaced as an invalid value, not a transition failure.
func (p *Parcel) AssignTo(h *handler.Handler, target status.Status) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if target.Name() != h.Role().TargetStatus() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("role %s targets %q, got %q", h.Role(), h.Role().TargetStatus(), target.Name()))
	}
	if !target.Name().InCustody() {
		return fmt.Errorf("%w: role %s cannot take custody of a parcel", ErrIllegalTransition, h.Role())
	}

	var from status.Name
	switch h.Role() {
	case handler.RolePickupman:
		from = status.Pending
	case handler.RoleDeliveryman:
		from = status.PickedUp
	default:
		return fmt.Errorf("%w: role %s cannot take custody of a parcel", ErrIllegalTransition, h.Role())
	}
	if p.status.Name() != from {
		return fmt.Errorf("%w: cannot assign a %s to a parcel in status %q",
			ErrIllegalTransition, h.Role(), p.status.Name())
	}

	id := h.ID()
	p.status = target
	p.handlerID = &id
	return p.appendTimeline(h.Role().AssignmentMessage(h.Name(), h.Phone()))
}

// Receive resets the parcel to pending and clears the handler link. It is the
// administrator's recovery path after a handler error, legal from every state
// except the finished ones (delivered, cancelled).
func (p *Parcel) Receive(pending status.Status) error {
	if err := expectName(pending, status.Pending); err != nil {
		return err
	}
	if p.status.Name() == status.Delivered || p.status.Name() == status.Cancelled {
		return fmt.Errorf("%w: cannot receive a parcel in status %q", ErrIllegalTransition, p.status.Name())
	}

	p.status = pending
	p.handlerID = nil
	return p.appendTimeline(msgReceived)
}

// MarkDelivered finishes the delivery: legal only from in_transit, clears the
// handler link, and writes the closing timeline entry.
func (p *Parcel) MarkDelivered(delivered status.Status) error {
	if err := expectName(delivered, status.Delivered); err != nil {
		return err
	}
	if p.status.Name() != status.InTransit {
		return fmt.Errorf("%w: cannot deliver a parcel in status %q", ErrIllegalTransition, p.status.Name())
	}

	p.status = delivered
	p.handlerID = nil
	return p.appendTimeline(msgDelivered)
}

// Cancel withdraws the parcel on the requester's behalf. Legal from every
// state except delivered. The handler link is cleared so the custody
// invariant holds; a cancelled parcel is in nobody's custody.
func (p *Parcel) Cancel(cancelled status.Status) error {
	if err := expectName(cancelled, status.Cancelled); err != nil {
		return err
	}
	if p.status.Name() == status.Delivered {
		return fmt.Errorf("%w: cannot cancel a parcel in status %q", ErrIllegalTransition, p.status.Name())
	}

	p.status = cancelled
	p.handlerID = nil
	return p.appendTimeline(msgCancelled)
}

// Override is the administrator's escape hatch: it forces the parcel into an
// arbitrary catalog status with a caller-supplied timeline message. The
// custody invariant still holds: forcing a custody status is refused because
// Override carries no handler, and forcing any other status clears the link.
func (p *Parcel) Override(st status.Status, message string) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	if st.Name().InCustody() {
		return fmt.Errorf("%w: cannot force status %q without a handler assignment", ErrIllegalTransition, st.Name())
	}

	p.status = st
	p.handlerID = nil
	return p.appendTimeline(message)
}

// UpdateShop repoints the shop reference. Part of the admin field merge.
func (p *Parcel) UpdateShop(shopID kernel.UUID) error {
	return p.setReference(&p.shopID, shopID, "shopId")
}

// UpdateCategory repoints the product category reference.
func (p *Parcel) UpdateCategory(categoryID kernel.UUID) error {
	return p.setReference(&p.categoryID, categoryID, "categoryId")
}

// UpdatePickup repoints the pickup address reference.
func (p *Parcel) UpdatePickup(pickupID kernel.UUID) error {
	return p.setReference(&p.pickupID, pickupID, "pickupId")
}

// UpdateDeliveryArea repoints the delivery area reference.
func (p *Parcel) UpdateDeliveryArea(deliveryAreaID kernel.UUID) error {
	return p.setReference(&p.deliveryAreaID, deliveryAreaID, "deliveryAreaId")
}

func (p *Parcel) appendTimeline(message string) error {
	entry, err := NewTimelineEntry(kernel.NewUUID(), p.id, message, p.status.ID(), time.Now().UTC())
	if err != nil {
		return err
	}
	p.pendingTimeline = append(p.pendingTimeline, entry)
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(tn TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	p.trackingNumber = tn
	return nil
}

func (p *Parcel) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requesterId", err)
	}
	p.requesterID = requesterID
	return nil
}

func (p *Parcel) setReference(field *kernel.UUID, id kernel.UUID, name string) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*field = id
	return nil
}

func expectName(st status.Status, want status.Name) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if st.Name() != want {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("expected catalog entry %q, got %q", want, st.Name()))
	}
	return nil
}

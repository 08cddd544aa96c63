package shipment

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment or RestoreShipment constructor")

// Shipment is the aggregate root of the tracking domain. It owns the
// delivery lifecycle from the initial request through assignment,
// transport, and completion.
//
// Invariants:
//   - id, userID, pickup, and drop are immutable after creation
//   - price is computed once at creation from the pickup-drop distance and
//     never falls below the tariff's base fare
//   - status changes only along the transition graph in Status
//   - the associate id is set at most once, while the shipment is Requested,
//     and is non-nil for every status from AssociateAssigned onward
type Shipment struct {
	// id is the unique identifier of the shipment
	id kernel.UUID

	// userID identifies the requesting user; an opaque, already
	// authenticated principal
	userID kernel.UUID

	// associateID is the assigned delivery associate (nil until assignment)
	associateID *kernel.UUID

	// pickup is where the package is collected
	pickup kernel.GeoPoint

	// drop is the delivery destination
	drop kernel.GeoPoint

	// price is the fare computed at creation
	price float64

	// status is the current lifecycle state
	status Status

	// guard ensures the shipment was created via a constructor
	guard guard.ConstructorGuard
}

// NewShipment creates a shipment in Requested status. The price is
// computed here, once, from the great-circle pickup-drop distance and the
// given tariff; it never changes afterwards.
//
// Returns a validation error if any identifier or point is invalid, or if
// the tariff was not constructed properly.
func NewShipment(
	id kernel.UUID,
	userID kernel.UUID,
	pickup kernel.GeoPoint,
	drop kernel.GeoPoint,
	tariff Tariff,
) (*Shipment, error) {
	s := &Shipment{
		status: Requested,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setUserID(userID),
		s.setRoute(pickup, drop),
		tariff.Validate(),
	); err != nil {
		return nil, err
	}

	distance, err := pickup.DistanceTo(drop)
	if err != nil {
		return nil, err
	}

	price, err := tariff.Price(distance)
	if err != nil {
		return nil, err
	}
	s.price = price

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistent storage in its
// previously saved state. Unlike NewShipment it does not recompute the
// price; the stored value is authoritative.
func RestoreShipment(
	id kernel.UUID,
	userID kernel.UUID,
	pickup kernel.GeoPoint,
	drop kernel.GeoPoint,
	price float64,
	status Status,
	associateID *kernel.UUID,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setUserID(userID),
		s.setRoute(pickup, drop),
		s.setPrice(price),
		s.setStatus(status, associateID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// UserID returns the identifier of the requesting user.
func (s *Shipment) UserID() kernel.UUID {
	return s.userID
}

// Pickup returns the pickup point.
func (s *Shipment) Pickup() kernel.GeoPoint {
	return s.pickup
}

// Drop returns the drop point.
func (s *Shipment) Drop() kernel.GeoPoint {
	return s.drop
}

// Price returns the fare computed at creation.
func (s *Shipment) Price() float64 {
	return s.price
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Associate returns the assigned delivery associate's id, or nil before
// assignment.
func (s *Shipment) Associate() *kernel.UUID {
	return s.associateID
}

// IsTerminal reports whether the shipment reached Delivered or Cancelled.
func (s *Shipment) IsTerminal() bool {
	return s.status.IsTerminal()
}

// Assign binds a delivery associate to the shipment and moves it to
// AssociateAssigned. Valid only while the shipment is Requested; any
// later status, including AssociateAssigned itself, rejects the call
// with an InvalidTransitionError, so an associate is bound at most once.
func (s *Shipment) Assign(associateID kernel.UUID) error {
	if err := associateID.Validate(); err != nil {
		return err
	}

	if err := s.status.ValidateAssign(); err != nil {
		return err
	}

	s.status = AssociateAssigned
	s.associateID = &associateID
	return nil
}

// AdvanceTo moves the shipment to target. Only the single next status in
// the delivery chain or Cancelled (from any non-terminal status) is
// accepted; everything else fails with an InvalidTransitionError and
// leaves the shipment unchanged.
//
// Releasing the bound associate on a terminal transition is the caller's
// responsibility; the aggregate keeps the associate id for the record.
func (s *Shipment) AdvanceTo(target Status) error {
	if err := s.status.CanTransitionTo(target); err != nil {
		return err
	}

	s.status = target
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	s.userID = userID
	return nil
}

func (s *Shipment) setRoute(pickup kernel.GeoPoint, drop kernel.GeoPoint) error {
	if err := errors.Join(pickup.Validate(), drop.Validate()); err != nil {
		return err
	}
	s.pickup = pickup
	s.drop = drop
	return nil
}

func (s *Shipment) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	s.price = price
	return nil
}

func (s *Shipment) setStatus(status Status, associateID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveAssociate(associateID != nil); err != nil {
		return err
	}
	if associateID != nil {
		if err := associateID.Validate(); err != nil {
			return err
		}
	}

	s.status = status
	s.associateID = associateID
	return nil
}

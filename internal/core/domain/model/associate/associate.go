package associate

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

// Domain errors for delivery associate operations.
var (
	// ErrNameIsRequired is returned when creating an associate without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when creating an associate without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrNotAvailable is returned when assigning an associate that is not available.
	ErrNotAvailable = errors.New("delivery associate is not available")
	// ErrDeliveryAssociateIsNotConstructed is returned when using an improperly
	// initialized DeliveryAssociate.
	ErrDeliveryAssociateIsNotConstructed = errors.New(
		"DeliveryAssociate must be created via NewDeliveryAssociate or RestoreDeliveryAssociate constructor")
)

// DeliveryAssociate is the aggregate for a courier working the service
// area. It tracks availability and the last reported location.
//
// Invariant: the associate is Assigned exactly while bound to one active
// shipment; Assign and Release are driven by the shipment lifecycle one
// layer up, never called directly by transports.
type DeliveryAssociate struct {
	// id uniquely identifies the associate
	id kernel.UUID
	// name is the human-readable name
	name string
	// email is the contact address
	email string
	// status is the current availability
	status Status
	// currentLocation is the last reported position
	currentLocation kernel.GeoPoint
	// guard ensures construction went through a constructor
	guard guard.ConstructorGuard
}

// NewDeliveryAssociate creates an Available associate at the given
// starting location.
func NewDeliveryAssociate(
	id kernel.UUID,
	name string,
	email string,
	location kernel.GeoPoint,
) (*DeliveryAssociate, error) {
	a := &DeliveryAssociate{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setLocation(location),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreDeliveryAssociate reconstructs an associate from persistent
// storage in its previously saved state.
func RestoreDeliveryAssociate(
	id kernel.UUID,
	name string,
	email string,
	status Status,
	location kernel.GeoPoint,
) (*DeliveryAssociate, error) {
	a := &DeliveryAssociate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setStatus(status),
		a.setLocation(location),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the associate was created through a constructor.
func (a *DeliveryAssociate) Validate() error {
	if a == nil {
		return ErrDeliveryAssociateIsNotConstructed
	}
	return a.guard.Validate(ErrDeliveryAssociateIsNotConstructed)
}

// IsEqual compares two associates by identifier.
func (a *DeliveryAssociate) IsEqual(other *DeliveryAssociate) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the associate's unique identifier.
func (a *DeliveryAssociate) ID() kernel.UUID {
	return a.id
}

// Name returns the associate's name.
func (a *DeliveryAssociate) Name() string {
	return a.name
}

// Email returns the associate's contact address.
func (a *DeliveryAssociate) Email() string {
	return a.email
}

// Status returns the associate's availability.
func (a *DeliveryAssociate) Status() Status {
	return a.status
}

// Location returns the last reported position.
func (a *DeliveryAssociate) Location() kernel.GeoPoint {
	return a.currentLocation
}

// MoveTo overwrites the associate's location with the given point.
// The write is unconditional: a ping reporting the same point is still a
// valid ping, and deduplication is the caller's concern.
func (a *DeliveryAssociate) MoveTo(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	a.currentLocation = point
	return nil
}

// Assign marks the associate as bound to a shipment. Only an Available
// associate can be assigned; anything else fails with ErrNotAvailable.
func (a *DeliveryAssociate) Assign() error {
	if a.status != Available {
		return ErrNotAvailable
	}

	a.status = Assigned
	return nil
}

// Release returns an Assigned associate to the Available pool. Called
// when its shipment reaches a terminal status. Releasing an associate
// that is not Assigned is a no-op, which keeps terminal transitions
// idempotent with respect to the associate.
func (a *DeliveryAssociate) Release() {
	if a.status == Assigned {
		a.status = Available
	}
}

// GoOffline withdraws the associate from the delivery pool.
// An Assigned associate cannot go offline mid-delivery.
func (a *DeliveryAssociate) GoOffline() error {
	if a.status == Assigned {
		return ErrNotAvailable
	}

	a.status = Offline
	return nil
}

func (a *DeliveryAssociate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DeliveryAssociate) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *DeliveryAssociate) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	a.email = email
	return nil
}

func (a *DeliveryAssociate) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

func (a *DeliveryAssociate) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.currentLocation = location
	return nil
}

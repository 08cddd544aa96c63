package shipment

import (
	"errors"
	"fmt"

	"tracker/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine accepting only the single next state in
// the delivery chain, plus cancellation from any non-terminal state:
//
//	Requested ──> AssociateAssigned ──> PickupLocationReached ──>
//	Transporting ──> DropLocationReached ──> Delivered
//	     │                │                        │
//	     └────────────────┴──> Cancelled <─────────┘
//
// Delivered and Cancelled are absorbing; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status of a freshly created shipment,
	// waiting for a delivery associate.
	Requested

	// AssociateAssigned indicates a delivery associate accepted the shipment.
	AssociateAssigned

	// PickupLocationReached indicates the associate arrived at the pickup point.
	PickupLocationReached

	// Transporting indicates the package is on its way to the drop point.
	Transporting

	// DropLocationReached indicates the associate arrived at the drop point.
	DropLocationReached

	// Delivered is the successful terminal status.
	Delivered

	// Cancelled is the terminal status for an aborted shipment,
	// reachable from every non-terminal status.
	Cancelled
)

// ErrInvalidTransition classifies every rejected status change.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a status change that the state machine
// does not permit from the current status.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// rejected from->to change.
func NewInvalidTransitionError(from Status, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getStatusStrings returns the wire names for all Status values,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:               "unknown",
		Requested:             "requested",
		AssociateAssigned:     "deliveryAssociateAssigned",
		PickupLocationReached: "pickupLocationReached",
		Transporting:          "transporting",
		DropLocationReached:   "dropLocationReached",
		Delivered:             "delivered",
		Cancelled:             "cancelled",
	}
}

// getValidStatusStrings returns only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested:             "requested",
		AssociateAssigned:     "deliveryAssociateAssigned",
		PickupLocationReached: "pickupLocationReached",
		Transporting:          "transporting",
		DropLocationReached:   "dropLocationReached",
		Delivered:             "delivered",
		Cancelled:             "cancelled",
	}
}

// StatusFromString parses a wire name into a Status.
// Returns a ValueIsInvalidError for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the defined statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is absorbing.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the single permitted successor in the delivery chain and
// true, or Unknown and false for terminal or invalid statuses.
// Cancellation is not part of the chain; see CanTransitionTo.
func (s Status) Next() (Status, bool) {
	switch s {
	case Requested:
		return AssociateAssigned, true
	case AssociateAssigned:
		return PickupLocationReached, true
	case PickupLocationReached:
		return Transporting, true
	case Transporting:
		return DropLocationReached, true
	case DropLocationReached:
		return Delivered, true
	default:
		return Unknown, false
	}
}

// CanTransitionTo checks whether the state machine permits moving from
// the current status to target. Permitted moves are the single next
// status in the chain, or Cancelled from any non-terminal status.
// Skipping states, moving backwards, and leaving a terminal status are
// all rejected with an InvalidTransitionError.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == Cancelled {
		if s.IsTerminal() {
			return NewInvalidTransitionError(s, target)
		}
		return nil
	}

	next, ok := s.Next()
	if !ok || next != target {
		return NewInvalidTransitionError(s, target)
	}
	return nil
}

// ValidateAssign checks if a delivery associate may be assigned from the
// current status. Assignment is valid only while the shipment is still
// Requested; a shipment that already has an associate is not reassignable.
func (s Status) ValidateAssign() error {
	if s != Requested {
		return NewInvalidTransitionError(s, AssociateAssigned)
	}
	return nil
}

// ValidateCanHaveAssociate validates the consistency between status and
// associate assignment when restoring a shipment from storage.
//
// Rules:
//   - Requested shipments must not have an associate
//   - AssociateAssigned through Delivered must have one
//   - Cancelled shipments may have one or not, depending on how far the
//     shipment progressed before cancellation
func (s Status) ValidateCanHaveAssociate(hasAssociate bool) error {
	if s == Cancelled {
		return nil
	}

	if hasAssociate && s == Requested {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s shipment cannot have a delivery associate", s),
		)
	}

	if !hasAssociate && s != Requested {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s shipment must have a delivery associate", s),
		)
	}

	return nil
}

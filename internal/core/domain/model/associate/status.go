package associate

import (
	"fmt"

	"tracker/internal/pkg/errs"
)

// Status represents the availability of a delivery associate.
//
// An associate is Assigned exactly while bound to one active shipment;
// completing or cancelling that shipment releases it back to Available.
// Offline associates are invisible to assignment.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the associate can accept a shipment.
	Available

	// Assigned means the associate is bound to exactly one active shipment.
	Assigned

	// Offline means the associate is not participating in deliveries.
	Offline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		Assigned:  "assigned",
		Offline:   "offline",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Assigned:  "assigned",
		Offline:   "offline",
	}
}

// StatusFromString parses a wire name into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid associate status", s),
	)
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid associate status", s),
		)
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

package cart

import (
	"fmt"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
)

// Status represents the lifecycle state of a checkout cart.
// It implements a state machine with defined transitions.
//
// State transitions:
//
//	Active ──> Converted
//	   │           ▲
//	   ▼           │
//	Abandoned ─────┘
//	   │
//	   └──> Expired
//
// An Active cart converts on checkout or is abandoned after inactivity; an
// Abandoned cart can still be recovered into a checkout, or expires after a
// longer idle period. Converted and Expired are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active is the initial status: the customer is still filling the cart.
	Active

	// Abandoned means the cart sat idle past the abandonment threshold.
	// Abandoned carts show up in the back office for recovery nudges.
	Abandoned

	// Converted means the cart went through checkout and became a booking. Final.
	Converted

	// Expired means an abandoned cart sat idle past the expiry threshold. Final.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Active:    "Active",
		Abandoned: "Abandoned",
		Converted: "Converted",
		Expired:   "Expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:    "Active",
		Abandoned: "Abandoned",
		Converted: "Converted",
		Expired:   "Expired",
	}
}

// StatusFromString parses a persisted status string back into a Status value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status is terminal.
// Converted and Expired carts accept no further transitions.
func (s Status) IsFinal() bool {
	return s == Converted || s == Expired
}

// Convert transitions the cart status to Converted on checkout.
// Allowed from Active and from Abandoned (a recovered checkout).
func (s Status) Convert() (Status, error) {
	if s != Active && s != Abandoned {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status transition is invalid",
			fmt.Errorf("cannot convert a cart in %s status", s))
	}
	return Converted, nil
}

// Abandon transitions the cart status to Abandoned.
// Allowed only from Active.
func (s Status) Abandon() (Status, error) {
	if s != Active {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status transition is invalid",
			fmt.Errorf("cannot abandon a cart in %s status", s))
	}
	return Abandoned, nil
}

// Expire transitions the cart status to Expired.
// Allowed only from Abandoned.
func (s Status) Expire() (Status, error) {
	if s != Abandoned {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status transition is invalid",
			fmt.Errorf("cannot expire a cart in %s status", s))
	}
	return Expired, nil
}

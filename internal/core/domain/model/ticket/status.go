package ticket

import (
	"fmt"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
)

// Status represents the lifecycle state of a support ticket.
//
// State transitions:
//
//	Open ──> InProgress ──> Resolved ──> Closed
//	  │                                    ▲
//	  └────────────────────────────────────┘
//
// The shortcut from Open to Closed covers tickets resolved without any work
// (duplicates, spam). Closed is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Open is the initial status of a freshly filed ticket.
	Open

	// InProgress means an agent picked the ticket up.
	InProgress

	// Resolved means the agent finished the work and waits for confirmation.
	Resolved

	// Closed means the ticket is done. Final.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Open:       "Open",
		InProgress: "InProgress",
		Resolved:   "Resolved",
		Closed:     "Closed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:       "Open",
		InProgress: "InProgress",
		Resolved:   "Resolved",
		Closed:     "Closed",
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

// CanTransitionTo reports whether moving to the target status is allowed.
func (s Status) CanTransitionTo(to Status) bool {
	allowed := map[Status][]Status{
		Open:       {InProgress, Closed},
		InProgress: {Resolved},
		Resolved:   {Closed},
	}
	for _, candidate := range allowed[s] {
		if candidate == to {
			return true
		}
	}
	return false
}

// Priority ranks how urgently a ticket needs attention.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow is for cosmetic questions with no deadline.
	PriorityLow

	// PriorityNormal is the default for ordinary requests.
	PriorityNormal

	// PriorityHigh is for issues blocking an upcoming rental.
	PriorityHigh

	// PriorityUrgent is for issues with an ongoing rental or delivery.
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		PriorityLow:     "Low",
		PriorityNormal:  "Normal",
		PriorityHigh:    "High",
		PriorityUrgent:  "Urgent",
	}
}

// PriorityFromString parses a persisted priority string back into a Priority value.
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getPriorityStrings() {
		if priority != PriorityUnknown && str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority is invalid",
		fmt.Errorf("%q is not a valid priority", s))
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if p < PriorityLow || p > PriorityUrgent {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
// This method implements the fmt.Stringer interface.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

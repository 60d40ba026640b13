package delivery

import (
	"fmt"
	"slices"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
)

// Status represents the stage of a vehicle delivery run.
// It implements a state machine with a fixed transition table.
//
// State transitions:
//
//	Unassigned ──> PickedUp ──> EnRoute ──> Arrived ──> Delivered
//	     │             │           │            │
//	     └─────────────┴───────────┴────────────┴──> Cancelled / Issue
//
// The five ordered stages form the linear progress a driver walks through;
// Cancelled and Issue are terminal side states reachable from any stage that
// has not finished yet. Status is a value object that validates transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Unassigned is the initial stage: the run is scheduled and waiting for a driver.
	Unassigned

	// PickedUp means the driver collected the vehicle from the lot.
	PickedUp

	// EnRoute means the driver is on the way to the customer address.
	EnRoute

	// Arrived means the driver reached the customer address.
	Arrived

	// Delivered means the vehicle changed hands. Final stage of the run.
	Delivered

	// Cancelled means the run was called off. Final.
	Cancelled

	// Issue means something went wrong en route and the run needs back-office
	// attention. Final; recovery happens through a support ticket and a new run.
	Issue
)

// orderedStages is the linear progress of a delivery run, in order.
var orderedStages = []Status{Unassigned, PickedUp, EnRoute, Arrived, Delivered}

// allowedTransitions is the full transition table of the delivery state machine.
// A status missing from the map accepts no outgoing transitions.
var allowedTransitions = map[Status][]Status{
	Unassigned: {PickedUp, Cancelled, Issue},
	PickedUp:   {EnRoute, Cancelled, Issue},
	EnRoute:    {Arrived, Cancelled, Issue},
	Arrived:    {Delivered, Cancelled, Issue},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Unassigned: "Unassigned",
		PickedUp:   "PickedUp",
		EnRoute:    "EnRoute",
		Arrived:    "Arrived",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Issue:      "Issue",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unassigned: "Unassigned",
		PickedUp:   "PickedUp",
		EnRoute:    "EnRoute",
		Arrived:    "Arrived",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Issue:      "Issue",
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
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s))
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

// CanTransitionTo reports whether the transition table allows moving from the
// receiver to the given status.
func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(allowedTransitions[s], to)
}

// Next returns the following linear stage of the run.
// The second return value is false for terminal statuses and for the side
// states, which have no linear successor.
//
// Example:
//
//	next, ok := delivery.PickedUp.Next() // EnRoute, true
//	_, ok = delivery.Delivered.Next()    // _, false
func (s Status) Next() (Status, bool) {
	idx := slices.Index(orderedStages, s)
	if idx < 0 || idx == len(orderedStages)-1 {
		return Unknown, false
	}
	return orderedStages[idx+1], true
}

// StepIndex returns the 0-based position of the status among the ordered
// stages, used to render progress indicators. Side states return -1.
//
// Example:
//
//	delivery.Unassigned.StepIndex() // 0
//	delivery.Delivered.StepIndex()  // 4
//	delivery.Issue.StepIndex()      // -1
func (s Status) StepIndex() int {
	return slices.Index(orderedStages, s)
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0 && s.Validate() == nil
}

package order

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status is the delivery-progress state of an order.
//
// State transitions:
//
//	Processing ──> Delivering ──> Delivered ──┬──> Completed
//	    │              │                      └──> Returned
//	    └──────────────┴──> Canceled
//
// Completed, Canceled and Returned are terminal.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota

	// Processing is the initial, editable state.
	Processing

	// Delivering means goods have left the source location.
	Delivering

	// Delivered means goods reached the destination; payment becomes due.
	Delivered

	// Completed is the normal terminal state.
	Completed

	// Canceled terminates an order before delivery completes.
	Canceled

	// Returned terminates a delivered order that was sent back.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Processing:    "Processing",
		Delivering:    "Delivering",
		Delivered:     "Delivered",
		Completed:     "Completed",
		Canceled:      "Canceled",
		Returned:      "Returned",
	}
}

// Validate checks that the status is one of the known, non-Unknown values.
// Used on values loaded from persistence.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > Returned {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further status transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled || s == Returned
}

// StartDelivery transitions Processing to Delivering.
func (s Status) StartDelivery() (Status, error) {
	if s != Processing {
		return StatusUnknown, errs.NewIllegalTransitionError("start delivery", s)
	}
	return Delivering, nil
}

// FinishDelivery transitions Delivering to Delivered.
func (s Status) FinishDelivery() (Status, error) {
	if s != Delivering {
		return StatusUnknown, errs.NewIllegalTransitionError("finish delivery", s)
	}
	return Delivered, nil
}

// Complete transitions Delivered to Completed.
func (s Status) Complete() (Status, error) {
	if s != Delivered {
		return StatusUnknown, errs.NewIllegalTransitionError("complete", s)
	}
	return Completed, nil
}

// Cancel transitions any state before delivery completes to Canceled.
// Delivering orders may still be canceled.
func (s Status) Cancel() (Status, error) {
	if s != Processing && s != Delivering {
		return StatusUnknown, errs.NewIllegalTransitionError("cancel", s)
	}
	return Canceled, nil
}

// Return transitions Delivered to Returned.
func (s Status) Return() (Status, error) {
	if s != Delivered {
		return StatusUnknown, errs.NewIllegalTransitionError("return", s)
	}
	return Returned, nil
}

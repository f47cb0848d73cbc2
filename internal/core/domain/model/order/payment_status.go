package order

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// PaymentStatus is the billing axis of an order. It moves independently of Status
// but every status transition leaves it in a defined state.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentDue
	PaymentCompleted
	PaymentCanceled
)

func (p PaymentStatus) String() string {
	switch p {
	case PaymentPending:
		return "Pending"
	case PaymentDue:
		return "Due"
	case PaymentCompleted:
		return "Completed"
	case PaymentCanceled:
		return "Canceled"
	case PaymentUnknown:
	}
	return "Unknown"
}

func (p PaymentStatus) Validate() error {
	if p <= PaymentUnknown || p > PaymentCanceled {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// Complete is legal only while payment is Due, so a second call fails.
func (p PaymentStatus) Complete() (PaymentStatus, error) {
	if p != PaymentDue {
		return PaymentUnknown, errs.NewIllegalTransitionError("complete payment", p)
	}
	return PaymentCompleted, nil
}

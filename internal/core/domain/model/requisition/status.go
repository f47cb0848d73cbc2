package requisition

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status tracks whether a derived purchase order is outstanding.
type Status int

const (
	StatusUnknown Status = iota
	Processing
	Purchasing
	Delayed
	Canceled
	Completed
)

var statusNames = map[Status]string{
	StatusUnknown: "Unknown",
	Processing:    "Processing",
	Purchasing:    "Purchasing",
	Delayed:       "Delayed",
	Canceled:      "Canceled",
	Completed:     "Completed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if s <= StatusUnknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("requisition status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) IsTerminal() bool {
	return s == Canceled || s == Completed
}

// ApprovalStatus is the sign-off axis.
type ApprovalStatus int

const (
	ApprovalUnknown ApprovalStatus = iota
	PendingApproval
	Approved
	Rejected
)

var approvalStatusNames = map[ApprovalStatus]string{
	ApprovalUnknown: "Unknown",
	PendingApproval: "PendingApproval",
	Approved:        "Approved",
	Rejected:        "Rejected",
}

func (s ApprovalStatus) String() string {
	if name, ok := approvalStatusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s ApprovalStatus) Validate() error {
	if s <= ApprovalUnknown || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("approval status", fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

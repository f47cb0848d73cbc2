package requisition

import (
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// Role is the capacity in which a user signs off a requisition.
type Role string

const (
	RoleFinance           Role = "finance"
	RoleProductionManager Role = "production_manager"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleFinance, RoleProductionManager:
		return r, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("approver role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	return string(r)
}

// Signature is one filled approval slot.
type Signature struct {
	UserID string
	Time   time.Time
}

// Approvals is the two-slot sign-off record. It is complete only when both slots are filled.
type Approvals struct {
	finance           *Signature
	productionManager *Signature
}

func RestoreApprovals(finance, productionManager *Signature) Approvals {
	return Approvals{finance: finance, productionManager: productionManager}
}

// Sign fills the slot for role. Signing a filled slot again replaces the signature.
func (a Approvals) Sign(role Role, userID string, at time.Time) (Approvals, error) {
	if err := kernel.ValidateUserID(userID); err != nil {
		return a, err
	}
	sig := &Signature{UserID: userID, Time: at.UTC()}
	switch role {
	case RoleFinance:
		a.finance = sig
	case RoleProductionManager:
		a.productionManager = sig
	default:
		return a, errs.NewValueIsInvalidErrorWithCause("approver role", fmt.Errorf("%q is not a known role", role))
	}
	return a, nil
}

func (a Approvals) IsComplete() bool {
	return a.finance != nil && a.productionManager != nil
}

func (a Approvals) Finance() *Signature {
	return a.finance
}

func (a Approvals) ProductionManager() *Signature {
	return a.productionManager
}

package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrGeneratePurchaseOrderCommandIsNotConstructed = errors.New(
	"GeneratePurchaseOrderCommand must be created via NewGeneratePurchaseOrderCommand constructor",
)

// GeneratePurchaseOrderCommand derives a purchase order from an approved requisition.
//
// Example:
//
//	cmd, err := NewGeneratePurchaseOrderCommand(requisitionID, kernel.NewUUID(), userID)
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); errors.Is(err, errs.ErrIllegalTransition) {
//	    // requisition not approved, already purchasing or a previous order is live
//	}
type GeneratePurchaseOrderCommand struct {
	requisitionID   kernel.UUID
	purchaseOrderID kernel.UUID
	userID          string

	guard guard.ConstructorGuard
}

func NewGeneratePurchaseOrderCommand(
	requisitionID, purchaseOrderID kernel.UUID,
	userID string,
) (GeneratePurchaseOrderCommand, error) {
	var errOrderID error
	if err := purchaseOrderID.Validate(); err != nil {
		errOrderID = errs.NewValueIsRequiredErrorWithCause("purchase order id", err)
	}
	if err := errors.Join(
		validateRequisitionID(requisitionID),
		errOrderID,
		kernel.ValidateUserID(userID),
	); err != nil {
		return GeneratePurchaseOrderCommand{}, err
	}

	return GeneratePurchaseOrderCommand{
		requisitionID:   requisitionID,
		purchaseOrderID: purchaseOrderID,
		userID:          userID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c GeneratePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrGeneratePurchaseOrderCommandIsNotConstructed)
}

func (c GeneratePurchaseOrderCommand) RequisitionID() kernel.UUID {
	return c.requisitionID
}

func (c GeneratePurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c GeneratePurchaseOrderCommand) UserID() string {
	return c.userID
}

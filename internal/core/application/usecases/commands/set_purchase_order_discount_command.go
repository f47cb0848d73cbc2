package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSetPurchaseOrderDiscountCommandIsNotConstructed = errors.New(
	"SetPurchaseOrderDiscountCommand must be created via NewSetPurchaseOrderDiscountCommand constructor",
)

// SetPurchaseOrderDiscountCommand records the order-level additional discount.
type SetPurchaseOrderDiscountCommand struct {
	purchaseOrderID kernel.UUID
	amount          decimal.Decimal

	guard guard.ConstructorGuard
}

func NewSetPurchaseOrderDiscountCommand(
	purchaseOrderID kernel.UUID,
	amount decimal.Decimal,
) (SetPurchaseOrderDiscountCommand, error) {
	if err := purchaseOrderID.Validate(); err != nil {
		return SetPurchaseOrderDiscountCommand{}, errs.NewValueIsRequiredErrorWithCause("purchase order id", err)
	}
	return SetPurchaseOrderDiscountCommand{
		purchaseOrderID: purchaseOrderID,
		amount:          amount,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c SetPurchaseOrderDiscountCommand) Validate() error {
	return c.guard.Validate(ErrSetPurchaseOrderDiscountCommandIsNotConstructed)
}

func (c SetPurchaseOrderDiscountCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c SetPurchaseOrderDiscountCommand) Amount() decimal.Decimal {
	return c.amount
}

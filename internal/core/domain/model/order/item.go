package order

import (
	"errors"
	"fmt"
	"strings"

	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxScale is the number of fractional digits kept for unit price, quantity and discount.
const MaxScale = 6

// Item is one line of an order. It is a value: orders hold copies, never references.
type Item struct {
	itemID    int64
	unit      string
	unitPrice decimal.Decimal
	quantity  decimal.Decimal
	discount  decimal.Decimal
}

// NewItem creates a line without discount.
func NewItem(itemID int64, unit string, unitPrice, quantity decimal.Decimal) (Item, error) {
	return NewDiscountedItem(itemID, unit, unitPrice, quantity, decimal.Zero)
}

// NewDiscountedItem creates a purchase-side line. The discount must lie in [0, TotalPrice].
func NewDiscountedItem(itemID int64, unit string, unitPrice, quantity, discount decimal.Decimal) (Item, error) {
	item := Item{itemID: itemID, unit: strings.TrimSpace(unit), unitPrice: unitPrice, quantity: quantity, discount: discount}

	var errID, errUnit, errPrice, errQuantity error
	if itemID <= 0 {
		errID = errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d must be positive", itemID))
	}
	if item.unit == "" {
		errUnit = errs.NewValueIsRequiredError("unit")
	}
	if unitPrice.IsNegative() {
		errPrice = errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", unitPrice))
	}
	if !quantity.IsPositive() {
		errQuantity = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s must be positive", quantity))
	}
	if err := errors.Join(
		errID,
		errUnit,
		errPrice,
		errQuantity,
		checkScale("unit price", unitPrice),
		checkScale("quantity", quantity),
		checkScale("discount", discount),
	); err != nil {
		return Item{}, err
	}

	if discount.IsNegative() || discount.GreaterThan(item.TotalPrice()) {
		return Item{}, errs.NewValueIsOutOfRangeError("discount", discount.String(), 0, item.TotalPrice().String())
	}
	return item, nil
}

func (i Item) ItemID() int64 {
	return i.itemID
}

func (i Item) Unit() string {
	return i.unit
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i Item) Quantity() decimal.Decimal {
	return i.quantity
}

func (i Item) Discount() decimal.Decimal {
	return i.discount
}

// TotalPrice is UnitPrice x Quantity.
func (i Item) TotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(i.quantity)
}

// NetPrice is TotalPrice less Discount.
func (i Item) NetPrice() decimal.Decimal {
	return i.TotalPrice().Sub(i.discount)
}

// GrossLineTotal totals a line by TotalPrice.
func GrossLineTotal(item Item) decimal.Decimal {
	return item.TotalPrice()
}

func checkScale(name string, d decimal.Decimal) error {
	if !d.Equal(d.Truncate(MaxScale)) {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%s has more than %d decimal places", d, MaxScale))
	}
	return nil
}

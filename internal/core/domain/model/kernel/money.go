package kernel

import (
	"fmt"

	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrVatRateIsNotConstructed is returned when a zero-value VatRate is validated.
var ErrVatRateIsNotConstructed = errs.NewValueIsRequiredError("VAT rate must be created via NewVatRate")

// VatRate is a fraction in [0, 1] applied to an order subtotal.
type VatRate struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

func NewVatRate(value decimal.Decimal) (VatRate, error) {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(1)) {
		return VatRate{}, errs.NewValueIsOutOfRangeError("vat rate", value.String(), 0, 1)
	}
	return VatRate{value: value, guard: guard.NewConstructorGuard()}, nil
}

// ParseVatRate reads rates such as "0.1" from configuration and persistence.
func ParseVatRate(s string) (VatRate, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return VatRate{}, errs.NewValueIsInvalidErrorWithCause("vat rate", fmt.Errorf("%q: %w", s, err))
	}
	return NewVatRate(value)
}

func (r VatRate) Validate() error {
	return r.guard.Validate(ErrVatRateIsNotConstructed)
}

func (r VatRate) Decimal() decimal.Decimal {
	return r.value
}

func (r VatRate) String() string {
	return r.value.String()
}

// Totals are the amounts derived from an item set. They are never set independently of items.
type Totals struct {
	SubTotal    decimal.Decimal
	VatAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// CalculateTotals is the single place subtotal, VAT and total are computed.
func CalculateTotals(lineTotals []decimal.Decimal, rate VatRate) Totals {
	subTotal := decimal.Zero
	for _, line := range lineTotals {
		subTotal = subTotal.Add(line)
	}
	vat := subTotal.Mul(rate.Decimal())
	return Totals{
		SubTotal:    subTotal,
		VatAmount:   vat,
		TotalAmount: subTotal.Add(vat),
	}
}

package order

import (
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Kind names the order variant a Policy belongs to.
type Kind string

const (
	KindPurchase Kind = "purchase"
	KindSales    Kind = "sales"
)

func (k Kind) String() string {
	return string(k)
}

// Policy is what an order variant contributes to the shared lifecycle engine.
type Policy interface {
	// Kind identifies the variant.
	Kind() Kind

	// LineTotal is the amount one item adds to the subtotal.
	LineTotal(item Item) decimal.Decimal

	// NewEvent builds a timeline entry for the variant.
	NewEvent(id int64, eventType EventType, location kernel.Location, message string, at time.Time) (Event, error)
}

func (k Kind) Validate() error {
	if k != KindPurchase && k != KindSales {
		return errs.NewValueIsInvalidErrorWithCause("order kind", fmt.Errorf("%q is not a known kind", string(k)))
	}
	return nil
}

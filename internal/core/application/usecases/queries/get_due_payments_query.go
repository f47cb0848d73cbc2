package queries

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetDuePaymentsQueryIsNotConstructed = errors.New(
		"GetDuePaymentsQuery must be created via NewGetDuePaymentsQuery constructor",
	)
)

// GetDuePaymentsQuery lists orders whose payment is Due.
type GetDuePaymentsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDuePaymentsQuery() GetDuePaymentsQuery {
	return GetDuePaymentsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDuePaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetDuePaymentsQueryIsNotConstructed)
}

// GetDuePaymentsQueryResponse is one outstanding payment. PartyID is the vendor
// for purchase orders and the customer for sales orders.
type GetDuePaymentsQueryResponse struct {
	ID          kernel.UUID
	Kind        order.Kind
	Status      order.Status
	PartyID     int64
	SubTotal    decimal.Decimal
	VatAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	DeliverTime *time.Time
}

// SumDue adds up the outstanding totals per order kind.
func SumDue(payments []GetDuePaymentsQueryResponse) map[order.Kind]decimal.Decimal {
	sums := make(map[order.Kind]decimal.Decimal)
	for _, p := range payments {
		sums[p.Kind] = sums[p.Kind].Add(p.TotalAmount)
	}
	return sums
}

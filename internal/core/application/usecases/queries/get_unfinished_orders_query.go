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
	ErrGetUnfinishedOrdersQueryIsNotConstructed = errors.New(
		"GetUnfinishedOrdersQuery must be created via NewGetUnfinishedOrdersQuery constructor",
	)
)

// GetUnfinishedOrdersQuery lists orders that have not reached Completed, Canceled or Returned.
//
// Example:
//
//	query, err := NewGetUnfinishedOrdersQuery(order.KindSales)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetUnfinishedOrdersQuery struct {
	kinds []order.Kind

	guard guard.ConstructorGuard
}

// NewGetUnfinishedOrdersQuery restricts the result to the given kinds; none means every kind.
func NewGetUnfinishedOrdersQuery(kinds ...order.Kind) (GetUnfinishedOrdersQuery, error) {
	for _, k := range kinds {
		if err := k.Validate(); err != nil {
			return GetUnfinishedOrdersQuery{}, err
		}
	}
	if len(kinds) == 0 {
		kinds = []order.Kind{order.KindPurchase, order.KindSales}
	}

	return GetUnfinishedOrdersQuery{kinds: kinds, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUnfinishedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnfinishedOrdersQueryIsNotConstructed)
}

func (q GetUnfinishedOrdersQuery) Kinds() []order.Kind {
	return q.kinds
}

// GetUnfinishedOrdersQueryResponse is one open order. FromLocation is zero for
// sales orders that have no facility yet.
type GetUnfinishedOrdersQueryResponse struct {
	ID            kernel.UUID
	Kind          order.Kind
	Status        order.Status
	PaymentStatus order.PaymentStatus
	FromLocation  kernel.Location
	ToLocation    kernel.Location
	TotalAmount   decimal.Decimal
	CreateTime    time.Time
}

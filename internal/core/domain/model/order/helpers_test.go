package order_test

import (
	"testing"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type grossPolicy struct{}

func (grossPolicy) Kind() order.Kind { return order.KindSales }

func (grossPolicy) LineTotal(item order.Item) decimal.Decimal { return item.TotalPrice() }

func (grossPolicy) NewEvent(
	id int64,
	eventType order.EventType,
	location kernel.Location,
	message string,
	at time.Time,
) (order.Event, error) {
	return order.NewEvent(id, eventType, location, message, at)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func vat(t *testing.T, s string) kernel.VatRate {
	t.Helper()
	rate, err := kernel.ParseVatRate(s)
	require.NoError(t, err)
	return rate
}

func item(t *testing.T, id int64, price, qty string) order.Item {
	t.Helper()
	i, err := order.NewItem(id, "pcs", dec(price), dec(qty))
	require.NoError(t, err)
	return i
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		grossPolicy{},
		kernel.MustLocation("Vendor yard"),
		kernel.MustLocation("Factory dock"),
		vat(t, "0.1"),
		"creator",
	)
	require.NoError(t, err)
	return o
}

func deliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newTestOrder(t)
	require.NoError(t, o.StartDelivery())
	require.NoError(t, o.FinishDelivery())
	return o
}

func now() time.Time {
	return time.Now().UTC()
}

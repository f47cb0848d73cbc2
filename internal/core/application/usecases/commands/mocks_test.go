package commands_test

import (
	"context"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/purchase"
	"supplychain/internal/core/domain/model/requisition"
	"supplychain/internal/core/domain/model/sales"
	"supplychain/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRequisitionRepository struct{ mock.Mock }

func (m *MockRequisitionRepository) Add(ctx context.Context, r *requisition.PurchaseRequisition) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequisitionRepository) Update(ctx context.Context, r *requisition.PurchaseRequisition) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequisitionRepository) Get(ctx context.Context, id kernel.UUID) (*requisition.PurchaseRequisition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requisition.PurchaseRequisition), args.Error(1)
}

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) Add(ctx context.Context, po *purchase.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Update(ctx context.Context, po *purchase.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchase.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchase.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) GetByRequisition(
	ctx context.Context,
	requisitionID kernel.UUID,
) ([]*purchase.PurchaseOrder, error) {
	args := m.Called(ctx, requisitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*purchase.PurchaseOrder), args.Error(1)
}

type MockSalesOrderRepository struct{ mock.Mock }

func (m *MockSalesOrderRepository) Add(ctx context.Context, so *sales.SalesOrder) error {
	args := m.Called(ctx, so)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Update(ctx context.Context, so *sales.SalesOrder) error {
	args := m.Called(ctx, so)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Get(ctx context.Context, id kernel.UUID) (*sales.SalesOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesOrder), args.Error(1)
}

// MockUoW satisfies every unit of work flavor used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RequisitionRepository() ports.RequisitionRepository {
	args := m.Called()
	return args.Get(0).(ports.RequisitionRepository)
}

func (m *MockUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockUoW) SalesOrderRepository() ports.SalesOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.SalesOrderRepository)
}

type MockRequisitionUoWFactory struct{ mock.Mock }

func (m *MockRequisitionUoWFactory) Create() commands.RequisitionUoW {
	args := m.Called()
	return args.Get(0).(commands.RequisitionUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func party(t *testing.T, id int64, location string) kernel.Party {
	t.Helper()
	p, err := kernel.NewParty(id, kernel.MustLocation(location))
	require.NoError(t, err)
	return p
}

func vatRate(t *testing.T) kernel.VatRate {
	t.Helper()
	r, err := kernel.ParseVatRate("0.1")
	require.NoError(t, err)
	return r
}

func lines(t *testing.T) []order.Item {
	t.Helper()
	i, err := order.NewItem(1, "kg", decimal.NewFromInt(100), decimal.NewFromInt(2))
	require.NoError(t, err)
	return []order.Item{i}
}

func pendingRequisition(t *testing.T) *requisition.PurchaseRequisition {
	t.Helper()
	r, err := requisition.NewPurchaseRequisition(kernel.NewUUID(), party(t, 1, "Vendor yard"),
		party(t, 2, "Plant 2"), vatRate(t), "requester")
	require.NoError(t, err)
	require.NoError(t, r.ReplaceItems(lines(t)))
	return r
}

func approvedRequisition(t *testing.T) *requisition.PurchaseRequisition {
	t.Helper()
	r := pendingRequisition(t)
	require.NoError(t, r.ApproveByFinance("fin"))
	require.NoError(t, r.ApproveByProductionManager("pm"))
	return r
}

func salesOrder(t *testing.T) *sales.SalesOrder {
	t.Helper()
	so, err := sales.NewSalesOrder(kernel.NewUUID(), party(t, 5, "Customer HQ"), nil, kernel.Location{},
		vatRate(t), "seller")
	require.NoError(t, err)
	require.NoError(t, so.ReplaceItems(lines(t)))
	return so
}

func purchaseOrder(t *testing.T) *purchase.PurchaseOrder {
	t.Helper()
	po, err := purchase.NewPurchaseOrder(kernel.NewUUID(), party(t, 1, "Vendor yard"), party(t, 2, "Plant 2"),
		vatRate(t), "buyer")
	require.NoError(t, err)
	return po
}

package queries_test

import (
	"context"
	"testing"
	"time"

	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/purchase"
	"supplychain/internal/core/domain/model/sales"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	unfinished     queries.GetUnfinishedOrdersQueryHandler
	duePayments    queries.GetDuePaymentsQueryHandler
	purchaseOrders *orderrepo.GormPurchaseOrderRepository
	salesOrders    *orderrepo.GormSalesOrderRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.EventDTO{})
	suite.Require().NoError(err)

	suite.unfinished = queries.NewGetUnfinishedOrdersQueryHandler(db)
	suite.duePayments = queries.NewGetDuePaymentsQueryHandler(db)
	suite.purchaseOrders = orderrepo.NewGormPurchaseOrderRepository(db, &mockAggregateTracker{})
	suite.salesOrders = orderrepo.NewGormSalesOrderRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_events, order_items, orders").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TestUnfinished_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetUnfinishedOrdersQuery()
	suite.Require().NoError(err)

	result, err := suite.unfinished.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestUnfinished_SkipsTerminalOrders() {
	ctx := context.Background()

	processing := suite.purchaseOrder()
	delivering := suite.purchaseOrder()
	suite.Require().NoError(delivering.StartDelivery())
	completed := suite.purchaseOrder()
	suite.Require().NoError(completed.StartDelivery())
	suite.Require().NoError(completed.FinishDelivery())
	suite.Require().NoError(completed.Complete("manager"))
	canceled := suite.purchaseOrder()
	suite.Require().NoError(canceled.Cancel("manager", "vendor closed"))

	for _, po := range []*purchase.PurchaseOrder{processing, delivering, completed, canceled} {
		suite.Require().NoError(suite.purchaseOrders.Add(ctx, po))
	}
	returned := suite.salesOrder()
	suite.Require().NoError(returned.StartDelivery())
	suite.Require().NoError(returned.FinishDelivery())
	suite.Require().NoError(returned.Return("seller", "damaged"))
	suite.Require().NoError(suite.salesOrders.Add(ctx, returned))

	query, err := queries.NewGetUnfinishedOrdersQuery()
	suite.Require().NoError(err)
	result, err := suite.unfinished.Handle(ctx, query)
	suite.Require().NoError(err)

	ids := make(map[kernel.UUID]queries.GetUnfinishedOrdersQueryResponse)
	for _, r := range result {
		ids[r.ID] = r
	}
	suite.Len(ids, 2)
	suite.Contains(ids, processing.ID())
	suite.Contains(ids, delivering.ID())
	suite.Equal(order.Delivering, ids[delivering.ID()].Status)
	suite.Equal(order.KindPurchase, ids[delivering.ID()].Kind)
	suite.Equal("Vendor yard", ids[processing.ID()].FromLocation.String())
}

func (suite *QueryHandlersTestSuite) TestUnfinished_FiltersByKind() {
	ctx := context.Background()
	po := suite.purchaseOrder()
	so := suite.salesOrder()
	suite.Require().NoError(suite.purchaseOrders.Add(ctx, po))
	suite.Require().NoError(suite.salesOrders.Add(ctx, so))

	query, err := queries.NewGetUnfinishedOrdersQuery(order.KindSales)
	suite.Require().NoError(err)
	result, err := suite.unfinished.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(so.ID(), result[0].ID)
	suite.True(result[0].FromLocation.IsZero())
	suite.Equal("Customer HQ", result[0].ToLocation.String())
	suite.True(so.Totals().TotalAmount.Equal(result[0].TotalAmount))
}

func (suite *QueryHandlersTestSuite) TestUnfinished_InvalidQuery_ReturnsError() {
	result, err := suite.unfinished.Handle(context.Background(), queries.GetUnfinishedOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetUnfinishedOrdersQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) TestUnfinished_ContextCancellation_ReturnsError() {
	for range 20 {
		suite.Require().NoError(suite.purchaseOrders.Add(context.Background(), suite.purchaseOrder()))
	}

	query, err := queries.NewGetUnfinishedOrdersQuery()
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.unfinished.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) TestDuePayments_ReturnsOnlyDueOrdersWithParty() {
	ctx := context.Background()

	delivered := suite.purchaseOrder()
	suite.Require().NoError(delivered.StartDelivery())
	suite.Require().NoError(delivered.FinishDelivery())

	paid := suite.salesOrder()
	suite.Require().NoError(paid.StartDelivery())
	suite.Require().NoError(paid.FinishDelivery())
	suite.Require().NoError(paid.CompletePayment())

	completedSale := suite.salesOrder()
	suite.Require().NoError(completedSale.StartDelivery())
	suite.Require().NoError(completedSale.FinishDelivery())
	suite.Require().NoError(completedSale.Complete("seller"))

	pending := suite.purchaseOrder()

	suite.Require().NoError(suite.purchaseOrders.Add(ctx, delivered))
	suite.Require().NoError(suite.purchaseOrders.Add(ctx, pending))
	suite.Require().NoError(suite.salesOrders.Add(ctx, paid))
	suite.Require().NoError(suite.salesOrders.Add(ctx, completedSale))

	result, err := suite.duePayments.Handle(ctx, queries.NewGetDuePaymentsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(delivered.ID(), result[0].ID)
	suite.Equal(int64(1), result[0].PartyID)
	suite.Equal(order.Delivered, result[0].Status)
	suite.Require().NotNil(result[0].DeliverTime)
	suite.True(delivered.Totals().TotalAmount.Equal(result[0].TotalAmount))

	suite.Equal(completedSale.ID(), result[1].ID)
	suite.Equal(order.KindSales, result[1].Kind)
	suite.Equal(int64(5), result[1].PartyID)
	suite.Equal(order.Completed, result[1].Status)

	sums := queries.SumDue(result)
	suite.True(decimal.RequireFromString("220").Equal(sums[order.KindPurchase]))
}

func (suite *QueryHandlersTestSuite) purchaseOrder() *purchase.PurchaseOrder {
	po, err := purchase.NewPurchaseOrder(kernel.NewUUID(), suite.party(1, "Vendor yard"), suite.party(2, "Plant 2"),
		suite.vatRate(), "buyer")
	suite.Require().NoError(err)
	suite.Require().NoError(po.AddItem(suite.item()))
	return po
}

func (suite *QueryHandlersTestSuite) salesOrder() *sales.SalesOrder {
	so, err := sales.NewSalesOrder(kernel.NewUUID(), suite.party(5, "Customer HQ"), nil, kernel.Location{},
		suite.vatRate(), "seller")
	suite.Require().NoError(err)
	suite.Require().NoError(so.AddItem(suite.item()))
	return so
}

func (suite *QueryHandlersTestSuite) party(id int64, location string) kernel.Party {
	p, err := kernel.NewParty(id, kernel.MustLocation(location))
	suite.Require().NoError(err)
	return p
}

func (suite *QueryHandlersTestSuite) vatRate() kernel.VatRate {
	rate, err := kernel.ParseVatRate("0.1")
	suite.Require().NoError(err)
	return rate
}

func (suite *QueryHandlersTestSuite) item() order.Item {
	it, err := order.NewItem(1, "kg", decimal.NewFromInt(100), decimal.NewFromInt(2))
	suite.Require().NoError(err)
	return it
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}

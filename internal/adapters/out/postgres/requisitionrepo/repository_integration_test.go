package requisitionrepo_test

import (
	"context"
	"testing"
	"time"

	"supplychain/internal/adapters/out/postgres/requisitionrepo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/requisition"
	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type RequisitionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *requisitionrepo.GormRequisitionRepository
	tracker    *MockAggregateTracker
}

func (suite *RequisitionRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&requisitionrepo.RequisitionDTO{},
		&requisitionrepo.ItemDTO{},
		&requisitionrepo.PurchaseOrderDTO{},
	))
}

func (suite *RequisitionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE requisition_purchase_orders, requisition_items, requisitions").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = requisitionrepo.NewGormRequisitionRepository(suite.db, suite.tracker)
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	r := suite.newRequisition()
	suite.Require().NoError(r.AddItem(suite.item(3, "12.5", "4")))
	suite.Require().NoError(r.AddItem(suite.item(1, "2", "10")))
	suite.tracker.On("TrackAggregate", r.ID(), r).Once()

	suite.Require().NoError(suite.repository.Add(ctx, r))

	loaded, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)

	suite.Equal(r.ID(), loaded.ID())
	suite.Equal(int64(7), loaded.Vendor().ID())
	suite.Equal("Vendor depot", loaded.Vendor().Location().String())
	suite.Equal(int64(9), loaded.Facility().ID())
	suite.Equal("Assembly plant", loaded.Facility().Location().String())
	suite.Equal(requisition.Processing, loaded.Status())
	suite.Equal(requisition.PendingApproval, loaded.ApprovalStatus())
	suite.Nil(loaded.Approvals().Finance())
	suite.Nil(loaded.Approvals().ProductionManager())
	suite.Equal("planner", loaded.Lifecycle().CreateUserID())
	suite.WithinDuration(r.Lifecycle().CreateTime(), loaded.Lifecycle().CreateTime(), time.Millisecond)
	suite.Equal(int64(0), loaded.Version())

	items := loaded.Items()
	suite.Require().Len(items, 2)
	suite.Equal(int64(3), items[0].ItemID())
	suite.Equal(int64(1), items[1].ItemID())
	suite.True(decimal.RequireFromString("70").Equal(loaded.Totals().SubTotal))
	suite.True(decimal.RequireFromString("77").Equal(loaded.Totals().TotalAmount))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsValueIsInvalid() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	r := suite.newRequisition()
	suite.Require().NoError(suite.repository.Add(ctx, r))

	err := suite.repository.Add(ctx, r)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestUpdate_PersistsApprovalsAndLinks() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	r := suite.newRequisition()
	suite.Require().NoError(r.AddItem(suite.item(1, "5", "2")))
	suite.Require().NoError(suite.repository.Add(ctx, r))

	suite.Require().NoError(r.ApproveByFinance("cfo"))
	suite.Require().NoError(r.ApproveByProductionManager("plant-manager"))
	po, err := r.GeneratePurchaseOrder(kernel.NewUUID(), "buyer", nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, r))
	suite.Equal(int64(1), r.Version())

	loaded, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(requisition.Approved, loaded.ApprovalStatus())
	suite.Equal(requisition.Purchasing, loaded.Status())
	suite.Require().NotNil(loaded.Approvals().Finance())
	suite.Equal("cfo", loaded.Approvals().Finance().UserID)
	suite.Require().NotNil(loaded.Approvals().ProductionManager())
	suite.Equal("plant-manager", loaded.Approvals().ProductionManager().UserID)
	suite.Equal([]kernel.UUID{po.ID()}, loaded.PurchaseOrderIDs())
	suite.Equal(int64(1), loaded.Version())
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestUpdate_CancelKeepsProblemAndFinishStamps() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	r := suite.newRequisition()
	suite.Require().NoError(suite.repository.Add(ctx, r))

	suite.Require().NoError(r.Reject("cfo", "over budget"))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	loaded, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(requisition.Canceled, loaded.Status())
	suite.Equal(requisition.Rejected, loaded.ApprovalStatus())
	suite.Equal("over budget", loaded.Problem())
	suite.True(loaded.IsEnded())
	suite.Equal("cfo", loaded.Lifecycle().FinishUserID())
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionIsInvalid() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	r := suite.newRequisition()
	suite.Require().NoError(suite.repository.Add(ctx, r))

	first, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ApproveByFinance("cfo"))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Cancel("planner", "duplicate request"))
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.Equal(int64(0), second.Version())

	loaded, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(requisition.Processing, loaded.Status())
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newRequisition())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestUpdate_ReplacedItemsKeepNewOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	r := suite.newRequisition()
	suite.Require().NoError(r.AddItem(suite.item(1, "5", "2")))
	suite.Require().NoError(suite.repository.Add(ctx, r))

	suite.Require().NoError(r.ReplaceItems([]order.Item{suite.item(9, "1", "1"), suite.item(4, "2", "3")}))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	loaded, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	items := loaded.Items()
	suite.Require().Len(items, 2)
	suite.Equal(int64(9), items[0].ItemID())
	suite.Equal(int64(4), items[1].ItemID())
	suite.True(decimal.RequireFromString("7").Equal(loaded.Totals().SubTotal))
}

func (suite *RequisitionRepositoryIntegrationTestSuite) newRequisition() *requisition.PurchaseRequisition {
	vendor, err := kernel.NewParty(7, kernel.MustLocation("Vendor depot"))
	suite.Require().NoError(err)
	facility, err := kernel.NewParty(9, kernel.MustLocation("Assembly plant"))
	suite.Require().NoError(err)
	rate, err := kernel.ParseVatRate("0.1")
	suite.Require().NoError(err)

	r, err := requisition.NewPurchaseRequisition(kernel.NewUUID(), vendor, facility, rate, "planner")
	suite.Require().NoError(err)
	return r
}

func (suite *RequisitionRepositoryIntegrationTestSuite) item(id int64, price, quantity string) order.Item {
	it, err := order.NewItem(id, "pcs", decimal.RequireFromString(price), decimal.RequireFromString(quantity))
	suite.Require().NoError(err)
	return it
}

func TestRequisitionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RequisitionRepositoryIntegrationTestSuite))
}

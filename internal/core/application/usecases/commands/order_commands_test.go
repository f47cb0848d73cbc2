package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/purchase"
	"supplychain/internal/core/domain/model/sales"
	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectSalesRoundTrip(t *testing.T, so *sales.SalesOrder) (*MockOrderUoWFactory, *MockUoW, *MockSalesOrderRepository) {
	t.Helper()
	ctx := t.Context()
	repo := new(MockSalesOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SalesOrderRepository").Return(repo).Once()
	repo.On("Get", ctx, so.ID()).Return(so, nil).Once()
	repo.On("Update", ctx, so).Return(nil).Maybe()
	uow.On("Commit", ctx).Return(nil).Maybe()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}

func expectPurchaseRoundTrip(
	t *testing.T,
	po *purchase.PurchaseOrder,
) (*MockOrderUoWFactory, *MockUoW, *MockPurchaseOrderRepository) {
	t.Helper()
	ctx := t.Context()
	repo := new(MockPurchaseOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PurchaseOrderRepository").Return(repo).Once()
	repo.On("Get", ctx, po.ID()).Return(po, nil).Once()
	repo.On("Update", ctx, po).Return(nil).Maybe()
	uow.On("Commit", ctx).Return(nil).Maybe()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}

func ref(t *testing.T, kind order.Kind, id kernel.UUID) commands.OrderRef {
	t.Helper()
	r, err := commands.NewOrderRef(kind, id)
	require.NoError(t, err)
	return r
}

func TestChangeOrderStatusCommandHandler_FullLifecycle(t *testing.T) {
	so := salesOrder(t)
	steps := []struct {
		target order.Status
		user   string
	}{
		{order.Delivering, ""},
		{order.Delivered, ""},
		{order.Completed, "user1"},
	}

	for _, step := range steps {
		cmd, err := commands.NewChangeOrderStatusCommand(ref(t, order.KindSales, so.ID()), step.target, step.user, "")
		require.NoError(t, err)
		factory, uow, repo := expectSalesRoundTrip(t, so)

		require.NoError(t, commands.NewChangeOrderStatusCommandHandler(factory).Handle(t.Context(), cmd))
		repo.AssertCalled(t, "Update", t.Context(), so)
		uow.AssertCalled(t, "Commit", t.Context())
	}

	assert.Equal(t, order.Completed, so.Status())
	assert.Equal(t, order.PaymentDue, so.PaymentStatus())
	assert.Equal(t, "user1", so.Lifecycle().FinishUserID())
	assert.True(t, so.Totals().TotalAmount.Equal(so.Totals().SubTotal.Add(so.Totals().VatAmount)))
}

func TestChangeOrderStatusCommandHandler_CancelPurchaseOrder(t *testing.T) {
	po := purchaseOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(ref(t, order.KindPurchase, po.ID()), order.Canceled,
		"buyer", "vendor declined")
	require.NoError(t, err)
	factory, _, _ := expectPurchaseRoundTrip(t, po)

	require.NoError(t, commands.NewChangeOrderStatusCommandHandler(factory).Handle(t.Context(), cmd))

	assert.Equal(t, order.Canceled, po.Status())
	assert.Equal(t, "vendor declined", po.Problem())
	assert.Equal(t, "Vendor yard", po.Events()[0].Location().String())
}

func TestChangeOrderStatusCommandHandler_IllegalTransitionIsNotSaved(t *testing.T) {
	so := salesOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(ref(t, order.KindSales, so.ID()), order.Returned, "qa", "broken")
	require.NoError(t, err)
	factory, uow, repo := expectSalesRoundTrip(t, so)

	err = commands.NewChangeOrderStatusCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewChangeOrderStatusCommand_Validation(t *testing.T) {
	r := ref(t, order.KindSales, kernel.NewUUID())

	_, err := commands.NewChangeOrderStatusCommand(r, order.Processing, "u", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewChangeOrderStatusCommand(r, order.Canceled, "u", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewChangeOrderStatusCommand(r, order.Completed, "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewChangeOrderStatusCommand(commands.OrderRef{}, order.Delivering, "", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCompleteOrderPaymentCommandHandler_SecondCallFails(t *testing.T) {
	so := salesOrder(t)
	require.NoError(t, so.StartDelivery())
	require.NoError(t, so.FinishDelivery())
	cmd, err := commands.NewCompleteOrderPaymentCommand(ref(t, order.KindSales, so.ID()))
	require.NoError(t, err)

	factory, _, _ := expectSalesRoundTrip(t, so)
	require.NoError(t, commands.NewCompleteOrderPaymentCommandHandler(factory).Handle(t.Context(), cmd))
	assert.Equal(t, order.PaymentCompleted, so.PaymentStatus())

	factory, _, _ = expectSalesRoundTrip(t, so)
	err = commands.NewCompleteOrderPaymentCommandHandler(factory).Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
}

func TestRecordAndEditOrderEventCommandHandlers(t *testing.T) {
	po := purchaseOrder(t)
	r := ref(t, order.KindPurchase, po.ID())

	record, err := commands.NewRecordOrderEventCommand(r, order.EventLeft, kernel.MustLocation("Vendor yard"), "")
	require.NoError(t, err)
	factory, _, _ := expectPurchaseRoundTrip(t, po)
	require.NoError(t, commands.NewRecordOrderEventCommandHandler(factory).Handle(t.Context(), record))

	moved := kernel.MustLocation("Vendor gate 2")
	note := "left late"
	edit, err := commands.NewEditOrderEventCommand(r, 1, &moved, &note)
	require.NoError(t, err)
	factory, _, _ = expectPurchaseRoundTrip(t, po)
	require.NoError(t, commands.NewEditOrderEventCommandHandler(factory).Handle(t.Context(), edit))

	events := po.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Vendor gate 2", events[0].Location().String())
	assert.Equal(t, "left late", events[0].Message())

	missing, err := commands.NewEditOrderEventCommand(r, 9, nil, &note)
	require.NoError(t, err)
	factory, _, _ = expectPurchaseRoundTrip(t, po)
	err = commands.NewEditOrderEventCommandHandler(factory).Handle(t.Context(), missing)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewRecordOrderEventCommand_RejectsAutomaticTypes(t *testing.T) {
	_, err := commands.NewRecordOrderEventCommand(ref(t, order.KindSales, kernel.NewUUID()),
		order.EventCompleted, kernel.MustLocation("x"), "")

	require.ErrorIs(t, err, errs.ErrInvalidEventType)
}

func TestReplaceOrderItemsCommandHandler_LockedAfterProcessing(t *testing.T) {
	so := salesOrder(t)
	require.NoError(t, so.StartDelivery())
	cmd, err := commands.NewReplaceOrderItemsCommand(ref(t, order.KindSales, so.ID()), lines(t))
	require.NoError(t, err)
	factory, _, repo := expectSalesRoundTrip(t, so)

	err = commands.NewReplaceOrderItemsCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReplaceOrderItemsCommandHandler_KeepsAdditionalDiscountInRange(t *testing.T) {
	po := purchaseOrder(t)
	require.NoError(t, po.ReplaceItems(lines(t)))
	require.NoError(t, po.SetAdditionalDiscount(decimal.NewFromInt(150)))
	cheaper, err := order.NewItem(2, "kg", decimal.NewFromInt(10), decimal.NewFromInt(1))
	require.NoError(t, err)
	cmd, err := commands.NewReplaceOrderItemsCommand(ref(t, order.KindPurchase, po.ID()), []order.Item{cheaper})
	require.NoError(t, err)
	factory, uow, repo := expectPurchaseRoundTrip(t, po)

	err = commands.NewReplaceOrderItemsCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSetPurchaseOrderDiscountCommandHandler_Handle(t *testing.T) {
	t.Run("stores the discount", func(t *testing.T) {
		po := purchaseOrder(t)
		require.NoError(t, po.ReplaceItems(lines(t)))
		cmd, err := commands.NewSetPurchaseOrderDiscountCommand(po.ID(), decimal.NewFromInt(25))
		require.NoError(t, err)
		factory, uow, repo := expectPurchaseRoundTrip(t, po)

		require.NoError(t, commands.NewSetPurchaseOrderDiscountCommandHandler(factory).Handle(t.Context(), cmd))

		assert.True(t, decimal.NewFromInt(25).Equal(po.AdditionalDiscount()))
		assert.True(t, decimal.NewFromInt(220).Equal(po.Totals().TotalAmount))
		repo.AssertCalled(t, "Update", t.Context(), po)
		uow.AssertCalled(t, "Commit", t.Context())
	})

	t.Run("above the net subtotal is not saved", func(t *testing.T) {
		po := purchaseOrder(t)
		require.NoError(t, po.ReplaceItems(lines(t)))
		cmd, err := commands.NewSetPurchaseOrderDiscountCommand(po.ID(), decimal.NewFromInt(201))
		require.NoError(t, err)
		factory, _, repo := expectPurchaseRoundTrip(t, po)

		err = commands.NewSetPurchaseOrderDiscountCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, po.AdditionalDiscount().IsZero())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("requires a constructed command", func(t *testing.T) {
		err := commands.NewSetPurchaseOrderDiscountCommandHandler(new(MockOrderUoWFactory)).
			Handle(t.Context(), commands.SetPurchaseOrderDiscountCommand{})

		require.ErrorIs(t, err, commands.ErrSetPurchaseOrderDiscountCommandIsNotConstructed)
	})
}

func TestAttachOrderDocumentCommandHandler_Handle(t *testing.T) {
	po := purchaseOrder(t)
	cmd, err := commands.NewAttachOrderDocumentCommand(ref(t, order.KindPurchase, po.ID()),
		commands.DocumentReceipt, "https://files.example.com/r/1.pdf")
	require.NoError(t, err)
	factory, _, _ := expectPurchaseRoundTrip(t, po)

	require.NoError(t, commands.NewAttachOrderDocumentCommandHandler(factory).Handle(t.Context(), cmd))

	assert.Equal(t, "https://files.example.com/r/1.pdf", po.ReceiptURL())
	assert.Empty(t, po.InvoiceURL())

	_, err = commands.NewAttachOrderDocumentCommand(ref(t, order.KindPurchase, po.ID()), "contract", "x")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateSalesOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	facility := party(t, 3, "Plant 3")
	cmd, err := commands.NewCreateSalesOrderCommand(id, party(t, 5, "Customer HQ"), &facility, kernel.Location{},
		vatRate(t), lines(t), "seller")
	require.NoError(t, err)

	repo := new(MockSalesOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SalesOrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(so *sales.SalesOrder) bool {
			return so.ID().IsEqual(id) &&
				so.FromLocation().String() == "Plant 3" &&
				so.ToLocation().String() == "Customer HQ" &&
				len(so.Items()) == 1
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	require.NoError(t, commands.NewCreateSalesOrderCommandHandler(factory).Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

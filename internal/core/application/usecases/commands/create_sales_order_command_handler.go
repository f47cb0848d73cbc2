package commands

import (
	"context"

	"supplychain/internal/core/domain/model/sales"
)

type CreateSalesOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateSalesOrderCommandHandler(uowFactory OrderUoWFactory) CreateSalesOrderCommandHandler {
	return CreateSalesOrderCommandHandler{uowFactory: uowFactory}
}

func (h CreateSalesOrderCommandHandler) Handle(ctx context.Context, cmd CreateSalesOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	so, err := sales.NewSalesOrder(
		cmd.OrderID(),
		cmd.Customer(),
		cmd.Facility(),
		cmd.DeliverTo(),
		cmd.VatRate(),
		cmd.UserID(),
	)
	if err != nil {
		return err
	}

	if err = so.ReplaceItems(cmd.Items()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SalesOrderRepository().Add(ctx, so); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

type SetPurchaseOrderDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSetPurchaseOrderDiscountCommandHandler(uowFactory OrderUoWFactory) SetPurchaseOrderDiscountCommandHandler {
	return SetPurchaseOrderDiscountCommandHandler{uowFactory: uowFactory}
}

func (h SetPurchaseOrderDiscountCommandHandler) Handle(ctx context.Context, cmd SetPurchaseOrderDiscountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PurchaseOrderRepository()
	po, err := repo.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return err
	}

	if err = po.SetAdditionalDiscount(cmd.Amount()); err != nil {
		return err
	}

	if err = repo.Update(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

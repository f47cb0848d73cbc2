package commands

import (
	"context"
)

// GeneratePurchaseOrderCommandHandler derives a purchase order and persists it
// together with the updated requisition. Nothing is committed unless both writes
// succeed, so a failed insert never leaves the requisition in Purchasing.
type GeneratePurchaseOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewGeneratePurchaseOrderCommandHandler(uowFactory UoWFactory) GeneratePurchaseOrderCommandHandler {
	return GeneratePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h GeneratePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd GeneratePurchaseOrderCommand) error {
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

	requisitionRepo := uow.RequisitionRepository()
	purchaseOrderRepo := uow.PurchaseOrderRepository()

	r, err := requisitionRepo.Get(ctx, cmd.RequisitionID())
	if err != nil {
		return err
	}

	linked, err := purchaseOrderRepo.GetByRequisition(ctx, cmd.RequisitionID())
	if err != nil {
		return err
	}

	po, err := r.GeneratePurchaseOrder(cmd.PurchaseOrderID(), cmd.UserID(), linked)
	if err != nil {
		return err
	}

	if err = purchaseOrderRepo.Add(ctx, po); err != nil {
		return err
	}

	if err = requisitionRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

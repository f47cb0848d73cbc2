package commands

import (
	"context"

	"supplychain/internal/core/domain/model/requisition"
)

// CreateRequisitionCommandHandler creates a requisition with its initial items.
type CreateRequisitionCommandHandler struct {
	uowFactory RequisitionUoWFactory
}

func NewCreateRequisitionCommandHandler(uowFactory RequisitionUoWFactory) CreateRequisitionCommandHandler {
	return CreateRequisitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the aggregate first so invalid input never opens a transaction.
func (h CreateRequisitionCommandHandler) Handle(ctx context.Context, cmd CreateRequisitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := requisition.NewPurchaseRequisition(
		cmd.RequisitionID(),
		cmd.Vendor(),
		cmd.Facility(),
		cmd.VatRate(),
		cmd.UserID(),
	)
	if err != nil {
		return err
	}

	if err = r.ReplaceItems(cmd.Items()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RequisitionRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

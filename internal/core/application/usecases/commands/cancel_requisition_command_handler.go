package commands

import (
	"context"

	"supplychain/internal/core/domain/model/requisition"
)

type CancelRequisitionCommandHandler struct {
	uowFactory RequisitionUoWFactory
}

func NewCancelRequisitionCommandHandler(uowFactory RequisitionUoWFactory) CancelRequisitionCommandHandler {
	return CancelRequisitionCommandHandler{uowFactory: uowFactory}
}

func (h CancelRequisitionCommandHandler) Handle(ctx context.Context, cmd CancelRequisitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateRequisition(ctx, h.uowFactory, cmd.RequisitionID(), func(r *requisition.PurchaseRequisition) error {
		return r.Cancel(cmd.UserID(), cmd.Problem())
	})
}

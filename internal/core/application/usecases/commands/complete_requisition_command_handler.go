package commands

import (
	"context"

	"supplychain/internal/core/domain/model/requisition"
)

type CompleteRequisitionCommandHandler struct {
	uowFactory RequisitionUoWFactory
}

func NewCompleteRequisitionCommandHandler(uowFactory RequisitionUoWFactory) CompleteRequisitionCommandHandler {
	return CompleteRequisitionCommandHandler{uowFactory: uowFactory}
}

func (h CompleteRequisitionCommandHandler) Handle(ctx context.Context, cmd CompleteRequisitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateRequisition(ctx, h.uowFactory, cmd.RequisitionID(), func(r *requisition.PurchaseRequisition) error {
		return r.Complete(cmd.UserID())
	})
}

package commands

import (
	"context"

	"supplychain/internal/core/domain/model/requisition"
)

type ReplaceRequisitionItemsCommandHandler struct {
	uowFactory RequisitionUoWFactory
}

func NewReplaceRequisitionItemsCommandHandler(uowFactory RequisitionUoWFactory) ReplaceRequisitionItemsCommandHandler {
	return ReplaceRequisitionItemsCommandHandler{uowFactory: uowFactory}
}

func (h ReplaceRequisitionItemsCommandHandler) Handle(ctx context.Context, cmd ReplaceRequisitionItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateRequisition(ctx, h.uowFactory, cmd.RequisitionID(), func(r *requisition.PurchaseRequisition) error {
		return r.ReplaceItems(cmd.Items())
	})
}

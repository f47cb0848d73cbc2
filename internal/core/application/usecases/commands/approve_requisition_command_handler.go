package commands

import (
	"context"

	"supplychain/internal/core/domain/model/requisition"
)

// ApproveRequisitionCommandHandler records an approval. The requisition becomes
// Approved when the second slot is filled.
type ApproveRequisitionCommandHandler struct {
	uowFactory RequisitionUoWFactory
}

func NewApproveRequisitionCommandHandler(uowFactory RequisitionUoWFactory) ApproveRequisitionCommandHandler {
	return ApproveRequisitionCommandHandler{uowFactory: uowFactory}
}

func (h ApproveRequisitionCommandHandler) Handle(ctx context.Context, cmd ApproveRequisitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateRequisition(ctx, h.uowFactory, cmd.RequisitionID(), func(r *requisition.PurchaseRequisition) error {
		return r.Approve(cmd.Role(), cmd.UserID())
	})
}

package commands

import (
	"context"

	"supplychain/internal/core/domain/model/requisition"
)

type RejectRequisitionCommandHandler struct {
	uowFactory RequisitionUoWFactory
}

func NewRejectRequisitionCommandHandler(uowFactory RequisitionUoWFactory) RejectRequisitionCommandHandler {
	return RejectRequisitionCommandHandler{uowFactory: uowFactory}
}

func (h RejectRequisitionCommandHandler) Handle(ctx context.Context, cmd RejectRequisitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateRequisition(ctx, h.uowFactory, cmd.RequisitionID(), func(r *requisition.PurchaseRequisition) error {
		return r.Reject(cmd.UserID(), cmd.Problem())
	})
}

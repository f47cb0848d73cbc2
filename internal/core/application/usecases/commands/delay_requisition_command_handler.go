package commands

import (
	"context"

	"supplychain/internal/core/domain/model/requisition"
)

type DelayRequisitionCommandHandler struct {
	uowFactory RequisitionUoWFactory
}

func NewDelayRequisitionCommandHandler(uowFactory RequisitionUoWFactory) DelayRequisitionCommandHandler {
	return DelayRequisitionCommandHandler{uowFactory: uowFactory}
}

func (h DelayRequisitionCommandHandler) Handle(ctx context.Context, cmd DelayRequisitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateRequisition(ctx, h.uowFactory, cmd.RequisitionID(), func(r *requisition.PurchaseRequisition) error {
		return r.Delay(cmd.Problem())
	})
}

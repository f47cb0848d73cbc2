package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

type CompleteOrderPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteOrderPaymentCommandHandler(uowFactory OrderUoWFactory) CompleteOrderPaymentCommandHandler {
	return CompleteOrderPaymentCommandHandler{uowFactory: uowFactory}
}

func (h CompleteOrderPaymentCommandHandler) Handle(ctx context.Context, cmd CompleteOrderPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.Ref(), (*order.Order).CompletePayment)
}

package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

type ReplaceOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReplaceOrderItemsCommandHandler(uowFactory OrderUoWFactory) ReplaceOrderItemsCommandHandler {
	return ReplaceOrderItemsCommandHandler{uowFactory: uowFactory}
}

func (h ReplaceOrderItemsCommandHandler) Handle(ctx context.Context, cmd ReplaceOrderItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.Ref(), func(o *order.Order) error {
		return o.ReplaceItems(cmd.Items())
	})
}

package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

type EditOrderEventCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewEditOrderEventCommandHandler(uowFactory OrderUoWFactory) EditOrderEventCommandHandler {
	return EditOrderEventCommandHandler{uowFactory: uowFactory}
}

func (h EditOrderEventCommandHandler) Handle(ctx context.Context, cmd EditOrderEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.Ref(), func(o *order.Order) error {
		_, err := o.EditEvent(cmd.EventID(), cmd.Location(), cmd.Message())
		return err
	})
}

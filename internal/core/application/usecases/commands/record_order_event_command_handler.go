package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

type RecordOrderEventCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRecordOrderEventCommandHandler(uowFactory OrderUoWFactory) RecordOrderEventCommandHandler {
	return RecordOrderEventCommandHandler{uowFactory: uowFactory}
}

func (h RecordOrderEventCommandHandler) Handle(ctx context.Context, cmd RecordOrderEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.Ref(), func(o *order.Order) error {
		_, err := o.RecordManualEvent(cmd.EventType(), cmd.Location(), cmd.Message())
		return err
	})
}

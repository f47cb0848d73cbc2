package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler dispatches a target status to the matching lifecycle operation.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.Ref(), func(o *order.Order) error {
		switch cmd.Target() {
		case order.Delivering:
			return o.StartDelivery()
		case order.Delivered:
			return o.FinishDelivery()
		case order.Completed:
			return o.Complete(cmd.UserID())
		case order.Canceled:
			return o.Cancel(cmd.UserID(), cmd.Problem())
		case order.Returned:
			return o.Return(cmd.UserID(), cmd.Problem())
		case order.StatusUnknown, order.Processing:
		}
		return errs.NewIllegalTransitionError("move to "+cmd.Target().String(), o.Status())
	})
}

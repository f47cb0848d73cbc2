package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

type AttachOrderDocumentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAttachOrderDocumentCommandHandler(uowFactory OrderUoWFactory) AttachOrderDocumentCommandHandler {
	return AttachOrderDocumentCommandHandler{uowFactory: uowFactory}
}

func (h AttachOrderDocumentCommandHandler) Handle(ctx context.Context, cmd AttachOrderDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.Ref(), func(o *order.Order) error {
		if cmd.Document() == DocumentReceipt {
			return o.AttachReceipt(cmd.URL())
		}
		return o.AttachInvoice(cmd.URL())
	})
}

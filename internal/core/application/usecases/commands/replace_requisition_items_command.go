package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrReplaceRequisitionItemsCommandIsNotConstructed = errors.New(
	"ReplaceRequisitionItemsCommand must be created via NewReplaceRequisitionItemsCommand constructor",
)

// ReplaceRequisitionItemsCommand swaps the items of a requisition still pending approval.
type ReplaceRequisitionItemsCommand struct {
	requisitionID kernel.UUID
	items         []order.Item

	guard guard.ConstructorGuard
}

func NewReplaceRequisitionItemsCommand(
	requisitionID kernel.UUID,
	items []order.Item,
) (ReplaceRequisitionItemsCommand, error) {
	if err := requisitionID.Validate(); err != nil {
		return ReplaceRequisitionItemsCommand{}, errs.NewValueIsRequiredErrorWithCause("requisition id", err)
	}
	return ReplaceRequisitionItemsCommand{
		requisitionID: requisitionID,
		items:         items,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ReplaceRequisitionItemsCommand) Validate() error {
	return c.guard.Validate(ErrReplaceRequisitionItemsCommandIsNotConstructed)
}

func (c ReplaceRequisitionItemsCommand) RequisitionID() kernel.UUID {
	return c.requisitionID
}

func (c ReplaceRequisitionItemsCommand) Items() []order.Item {
	return c.items
}

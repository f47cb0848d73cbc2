package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/guard"
)

var ErrReplaceOrderItemsCommandIsNotConstructed = errors.New(
	"ReplaceOrderItemsCommand must be created via NewReplaceOrderItemsCommand constructor",
)

// ReplaceOrderItemsCommand swaps the items of an order still Processing.
type ReplaceOrderItemsCommand struct {
	ref   OrderRef
	items []order.Item

	guard guard.ConstructorGuard
}

func NewReplaceOrderItemsCommand(ref OrderRef, items []order.Item) (ReplaceOrderItemsCommand, error) {
	if err := ref.Kind().Validate(); err != nil {
		return ReplaceOrderItemsCommand{}, err
	}
	return ReplaceOrderItemsCommand{ref: ref, items: items, guard: guard.NewConstructorGuard()}, nil
}

func (c ReplaceOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrReplaceOrderItemsCommandIsNotConstructed)
}

func (c ReplaceOrderItemsCommand) Ref() OrderRef {
	return c.ref
}

func (c ReplaceOrderItemsCommand) Items() []order.Item {
	return c.items
}

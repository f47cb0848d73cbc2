package commands

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var ErrCompleteOrderPaymentCommandIsNotConstructed = errors.New(
	"CompleteOrderPaymentCommand must be created via NewCompleteOrderPaymentCommand constructor",
)

// CompleteOrderPaymentCommand settles the Due payment of an order.
type CompleteOrderPaymentCommand struct {
	ref OrderRef

	guard guard.ConstructorGuard
}

func NewCompleteOrderPaymentCommand(ref OrderRef) (CompleteOrderPaymentCommand, error) {
	if err := ref.Kind().Validate(); err != nil {
		return CompleteOrderPaymentCommand{}, err
	}
	return CompleteOrderPaymentCommand{ref: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderPaymentCommandIsNotConstructed)
}

func (c CompleteOrderPaymentCommand) Ref() OrderRef {
	return c.ref
}

package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrRecordOrderEventCommandIsNotConstructed = errors.New(
	"RecordOrderEventCommand must be created via NewRecordOrderEventCommand constructor",
)

// RecordOrderEventCommand appends an operator event (Left, Arrived, Delivered, Interrupted).
type RecordOrderEventCommand struct {
	ref       OrderRef
	eventType order.EventType
	location  kernel.Location
	message   string

	guard guard.ConstructorGuard
}

func NewRecordOrderEventCommand(
	ref OrderRef,
	eventType order.EventType,
	location kernel.Location,
	message string,
) (RecordOrderEventCommand, error) {
	var errType, errLocation error
	if !eventType.IsManual() {
		errType = errs.NewInvalidEventTypeError(eventType)
	}
	if err := location.Validate(); err != nil {
		errLocation = errs.NewValueIsRequiredErrorWithCause("event location", err)
	}
	if err := errors.Join(ref.Kind().Validate(), errType, errLocation); err != nil {
		return RecordOrderEventCommand{}, err
	}

	return RecordOrderEventCommand{
		ref:       ref,
		eventType: eventType,
		location:  location,
		message:   message,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordOrderEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordOrderEventCommandIsNotConstructed)
}

func (c RecordOrderEventCommand) Ref() OrderRef {
	return c.ref
}

func (c RecordOrderEventCommand) EventType() order.EventType {
	return c.eventType
}

func (c RecordOrderEventCommand) Location() kernel.Location {
	return c.location
}

func (c RecordOrderEventCommand) Message() string {
	return c.message
}

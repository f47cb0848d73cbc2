package commands

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrEditOrderEventCommandIsNotConstructed = errors.New(
	"EditOrderEventCommand must be created via NewEditOrderEventCommand constructor",
)

// EditOrderEventCommand changes the location and/or message of a manual event.
// Nil fields are left unchanged.
type EditOrderEventCommand struct {
	ref      OrderRef
	eventID  int64
	location *kernel.Location
	message  *string

	guard guard.ConstructorGuard
}

func NewEditOrderEventCommand(
	ref OrderRef,
	eventID int64,
	location *kernel.Location,
	message *string,
) (EditOrderEventCommand, error) {
	var errID error
	if eventID <= 0 {
		errID = errs.NewValueIsInvalidErrorWithCause("event id", fmt.Errorf("%d must be positive", eventID))
	}
	if err := errors.Join(ref.Kind().Validate(), errID); err != nil {
		return EditOrderEventCommand{}, err
	}

	return EditOrderEventCommand{
		ref:      ref,
		eventID:  eventID,
		location: location,
		message:  message,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EditOrderEventCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderEventCommandIsNotConstructed)
}

func (c EditOrderEventCommand) Ref() OrderRef {
	return c.ref
}

func (c EditOrderEventCommand) EventID() int64 {
	return c.eventID
}

func (c EditOrderEventCommand) Location() *kernel.Location {
	return c.location
}

func (c EditOrderEventCommand) Message() *string {
	return c.message
}

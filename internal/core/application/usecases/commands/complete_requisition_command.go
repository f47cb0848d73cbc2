package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrCompleteRequisitionCommandIsNotConstructed = errors.New(
	"CompleteRequisitionCommand must be created via NewCompleteRequisitionCommand constructor",
)

type CompleteRequisitionCommand struct {
	requisitionID kernel.UUID
	userID        string

	guard guard.ConstructorGuard
}

func NewCompleteRequisitionCommand(requisitionID kernel.UUID, userID string) (CompleteRequisitionCommand, error) {
	if err := errors.Join(
		validateRequisitionID(requisitionID),
		kernel.ValidateUserID(userID),
	); err != nil {
		return CompleteRequisitionCommand{}, err
	}

	return CompleteRequisitionCommand{
		requisitionID: requisitionID,
		userID:        userID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteRequisitionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRequisitionCommandIsNotConstructed)
}

func (c CompleteRequisitionCommand) RequisitionID() kernel.UUID {
	return c.requisitionID
}

func (c CompleteRequisitionCommand) UserID() string {
	return c.userID
}

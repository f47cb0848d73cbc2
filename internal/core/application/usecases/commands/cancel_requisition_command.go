package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrCancelRequisitionCommandIsNotConstructed = errors.New(
	"CancelRequisitionCommand must be created via NewCancelRequisitionCommand constructor",
)

type CancelRequisitionCommand struct {
	requisitionID kernel.UUID
	userID        string
	problem       string

	guard guard.ConstructorGuard
}

func NewCancelRequisitionCommand(requisitionID kernel.UUID, userID, problem string) (CancelRequisitionCommand, error) {
	if err := errors.Join(
		validateRequisitionID(requisitionID),
		kernel.ValidateUserID(userID),
		validateProblem(problem),
	); err != nil {
		return CancelRequisitionCommand{}, err
	}

	return CancelRequisitionCommand{
		requisitionID: requisitionID,
		userID:        userID,
		problem:       problem,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CancelRequisitionCommand) Validate() error {
	return c.guard.Validate(ErrCancelRequisitionCommandIsNotConstructed)
}

func (c CancelRequisitionCommand) RequisitionID() kernel.UUID {
	return c.requisitionID
}

func (c CancelRequisitionCommand) UserID() string {
	return c.userID
}

func (c CancelRequisitionCommand) Problem() string {
	return c.problem
}

package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrRejectRequisitionCommandIsNotConstructed = errors.New(
	"RejectRequisitionCommand must be created via NewRejectRequisitionCommand constructor",
)

// RejectRequisitionCommand refuses a pending requisition, which also cancels it.
type RejectRequisitionCommand struct {
	requisitionID kernel.UUID
	userID        string
	problem       string

	guard guard.ConstructorGuard
}

func NewRejectRequisitionCommand(requisitionID kernel.UUID, userID, problem string) (RejectRequisitionCommand, error) {
	if err := errors.Join(
		validateRequisitionID(requisitionID),
		kernel.ValidateUserID(userID),
		validateProblem(problem),
	); err != nil {
		return RejectRequisitionCommand{}, err
	}

	return RejectRequisitionCommand{
		requisitionID: requisitionID,
		userID:        userID,
		problem:       problem,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RejectRequisitionCommand) Validate() error {
	return c.guard.Validate(ErrRejectRequisitionCommandIsNotConstructed)
}

func (c RejectRequisitionCommand) RequisitionID() kernel.UUID {
	return c.requisitionID
}

func (c RejectRequisitionCommand) UserID() string {
	return c.userID
}

func (c RejectRequisitionCommand) Problem() string {
	return c.problem
}

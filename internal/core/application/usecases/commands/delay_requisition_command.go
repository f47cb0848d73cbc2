package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrDelayRequisitionCommandIsNotConstructed = errors.New(
	"DelayRequisitionCommand must be created via NewDelayRequisitionCommand constructor",
)

// DelayRequisitionCommand parks a purchasing requisition with a problem description.
type DelayRequisitionCommand struct {
	requisitionID kernel.UUID
	problem       string

	guard guard.ConstructorGuard
}

func NewDelayRequisitionCommand(requisitionID kernel.UUID, problem string) (DelayRequisitionCommand, error) {
	if err := errors.Join(
		validateRequisitionID(requisitionID),
		validateProblem(problem),
	); err != nil {
		return DelayRequisitionCommand{}, err
	}

	return DelayRequisitionCommand{
		requisitionID: requisitionID,
		problem:       problem,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c DelayRequisitionCommand) Validate() error {
	return c.guard.Validate(ErrDelayRequisitionCommandIsNotConstructed)
}

func (c DelayRequisitionCommand) RequisitionID() kernel.UUID {
	return c.requisitionID
}

func (c DelayRequisitionCommand) Problem() string {
	return c.problem
}

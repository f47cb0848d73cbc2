package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/requisition"
	"supplychain/internal/pkg/guard"
)

var ErrApproveRequisitionCommandIsNotConstructed = errors.New(
	"ApproveRequisitionCommand must be created via NewApproveRequisitionCommand constructor",
)

// ApproveRequisitionCommand fills one approval slot of a requisition. The role is
// supplied by the identity collaborator; this core only records it.
type ApproveRequisitionCommand struct {
	requisitionID kernel.UUID
	role          requisition.Role
	userID        string

	guard guard.ConstructorGuard
}

func NewApproveRequisitionCommand(
	requisitionID kernel.UUID,
	role string,
	userID string,
) (ApproveRequisitionCommand, error) {
	parsed, errRole := requisition.ParseRole(role)
	if err := errors.Join(
		validateRequisitionID(requisitionID),
		errRole,
		kernel.ValidateUserID(userID),
	); err != nil {
		return ApproveRequisitionCommand{}, err
	}

	return ApproveRequisitionCommand{
		requisitionID: requisitionID,
		role:          parsed,
		userID:        userID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveRequisitionCommand) Validate() error {
	return c.guard.Validate(ErrApproveRequisitionCommandIsNotConstructed)
}

func (c ApproveRequisitionCommand) RequisitionID() kernel.UUID {
	return c.requisitionID
}

func (c ApproveRequisitionCommand) Role() requisition.Role {
	return c.role
}

func (c ApproveRequisitionCommand) UserID() string {
	return c.userID
}

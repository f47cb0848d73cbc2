package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrCreateRequisitionCommandIsNotConstructed = errors.New(
	"CreateRequisitionCommand must be created via NewCreateRequisitionCommand constructor",
)

// CreateRequisitionCommand registers a purchase requisition awaiting approval.
//
// Example:
//
//	cmd, err := NewCreateRequisitionCommand(kernel.NewUUID(), vendor, facility, rate, items, userID)
//	if err != nil {
//	    return fmt.Errorf("invalid requisition: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateRequisitionCommand struct { //nolint:recvcheck //using for validation
	requisitionID kernel.UUID
	vendor        kernel.Party
	facility      kernel.Party
	vatRate       kernel.VatRate
	items         []order.Item
	userID        string

	guard guard.ConstructorGuard
}

func NewCreateRequisitionCommand(
	requisitionID kernel.UUID,
	vendor, facility kernel.Party,
	vatRate kernel.VatRate,
	items []order.Item,
	userID string,
) (CreateRequisitionCommand, error) {
	cmd := CreateRequisitionCommand{
		vendor:   vendor,
		facility: facility,
		vatRate:  vatRate,
		items:    items,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequisitionID(requisitionID),
		cmd.setUserID(userID),
	); err != nil {
		return CreateRequisitionCommand{}, err
	}

	return cmd, nil
}

func (c CreateRequisitionCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequisitionCommandIsNotConstructed)
}

func (c CreateRequisitionCommand) RequisitionID() kernel.UUID {
	return c.requisitionID
}

func (c CreateRequisitionCommand) Vendor() kernel.Party {
	return c.vendor
}

func (c CreateRequisitionCommand) Facility() kernel.Party {
	return c.facility
}

func (c CreateRequisitionCommand) VatRate() kernel.VatRate {
	return c.vatRate
}

func (c CreateRequisitionCommand) Items() []order.Item {
	return c.items
}

func (c CreateRequisitionCommand) UserID() string {
	return c.userID
}

func (c *CreateRequisitionCommand) setRequisitionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requisition id", err)
	}
	c.requisitionID = id
	return nil
}

func (c *CreateRequisitionCommand) setUserID(userID string) error {
	if err := kernel.ValidateUserID(userID); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

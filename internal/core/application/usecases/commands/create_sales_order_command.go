package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrCreateSalesOrderCommandIsNotConstructed = errors.New(
	"CreateSalesOrderCommand must be created via NewCreateSalesOrderCommand constructor",
)

// CreateSalesOrderCommand registers a sales order for a customer. The facility is
// optional and deliverTo may be zero to ship to the customer's default location.
type CreateSalesOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	customer  kernel.Party
	facility  *kernel.Party
	deliverTo kernel.Location
	vatRate   kernel.VatRate
	items     []order.Item
	userID    string

	guard guard.ConstructorGuard
}

func NewCreateSalesOrderCommand(
	orderID kernel.UUID,
	customer kernel.Party,
	facility *kernel.Party,
	deliverTo kernel.Location,
	vatRate kernel.VatRate,
	items []order.Item,
	userID string,
) (CreateSalesOrderCommand, error) {
	cmd := CreateSalesOrderCommand{
		customer:  customer,
		facility:  facility,
		deliverTo: deliverTo,
		vatRate:   vatRate,
		items:     items,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return CreateSalesOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateSalesOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateSalesOrderCommandIsNotConstructed)
}

func (c CreateSalesOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateSalesOrderCommand) Customer() kernel.Party {
	return c.customer
}

func (c CreateSalesOrderCommand) Facility() *kernel.Party {
	return c.facility
}

func (c CreateSalesOrderCommand) DeliverTo() kernel.Location {
	return c.deliverTo
}

func (c CreateSalesOrderCommand) VatRate() kernel.VatRate {
	return c.vatRate
}

func (c CreateSalesOrderCommand) Items() []order.Item {
	return c.items
}

func (c CreateSalesOrderCommand) UserID() string {
	return c.userID
}

func (c *CreateSalesOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = id
	return nil
}

func (c *CreateSalesOrderCommand) setUserID(userID string) error {
	if err := kernel.ValidateUserID(userID); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

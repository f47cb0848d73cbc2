// Package sales holds the sales order variant: goods shipped from a production
// facility to a customer, totaled by UnitPrice x Quantity.
package sales

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Policy struct{}

func (Policy) Kind() order.Kind {
	return order.KindSales
}

func (Policy) LineTotal(item order.Item) decimal.Decimal {
	return order.GrossLineTotal(item)
}

func (Policy) NewEvent(
	id int64,
	eventType order.EventType,
	location kernel.Location,
	message string,
	at time.Time,
) (order.Event, error) {
	return order.NewEvent(id, eventType, location, message, at)
}

// SalesOrder composes the lifecycle engine with the customer and the optional
// production facility fulfilling it.
type SalesOrder struct {
	*order.Order

	customerID int64
	facilityID *int64
}

// NewSalesOrder ships to the customer's default location unless deliverTo is set.
// The source is the facility's location, or unset when no facility is chosen yet.
func NewSalesOrder(
	id kernel.UUID,
	customer kernel.Party,
	facility *kernel.Party,
	deliverTo kernel.Location,
	vatRate kernel.VatRate,
	userID string,
) (*SalesOrder, error) {
	if err := customer.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customer", err)
	}

	var from kernel.Location
	var facilityID *int64
	if facility != nil {
		if err := facility.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("production facility", err)
		}
		from = facility.Location()
		fid := facility.ID()
		facilityID = &fid
	}

	to := customer.Location()
	if !deliverTo.IsZero() {
		to = deliverTo
	}

	o, err := order.NewOrder(id, Policy{}, from, to, vatRate, userID)
	if err != nil {
		return nil, err
	}

	return &SalesOrder{Order: o, customerID: customer.ID(), facilityID: facilityID}, nil
}

func RestoreSalesOrder(p order.RestoreParams, customerID int64, facilityID *int64) (*SalesOrder, error) {
	o, err := order.RestoreOrder(Policy{}, p)
	if err != nil {
		return nil, err
	}
	return &SalesOrder{Order: o, customerID: customerID, facilityID: facilityID}, nil
}

func (so *SalesOrder) CustomerID() int64 {
	return so.customerID
}

func (so *SalesOrder) FacilityID() *int64 {
	return so.facilityID
}

// AssignFacility chooses the fulfilling facility and moves the source to its location.
// Legal only while the order is Processing.
func (so *SalesOrder) AssignFacility(facility kernel.Party) error {
	if err := facility.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("production facility", err)
	}
	from := facility.Location()
	if err := so.UpdateLocations(&from, nil); err != nil {
		return err
	}
	id := facility.ID()
	so.facilityID = &id
	return nil
}

// Package purchase holds the purchase order variant: goods bought from a vendor
// and delivered to a production facility. VAT and the total are computed on the gross
// subtotal; line discounts and the order-level additional discount are reported apart.
package purchase

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Policy totals purchase lines by TotalPrice.
type Policy struct{}

func (Policy) Kind() order.Kind {
	return order.KindPurchase
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

// PurchaseOrder composes the lifecycle engine with vendor, facility and the
// requisition it was derived from, if any.
type PurchaseOrder struct {
	*order.Order

	vendorID           int64
	facilityID         int64
	requisitionID      *kernel.UUID
	additionalDiscount decimal.Decimal
}

// NewPurchaseOrder ships from the vendor's default location to the facility's location.
func NewPurchaseOrder(
	id kernel.UUID,
	vendor, facility kernel.Party,
	vatRate kernel.VatRate,
	userID string,
) (*PurchaseOrder, error) {
	if err := errors.Join(
		validateParty("vendor", vendor),
		validateParty("production facility", facility),
	); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(id, Policy{}, vendor.Location(), facility.Location(), vatRate, userID)
	if err != nil {
		return nil, err
	}

	return &PurchaseOrder{Order: o, vendorID: vendor.ID(), facilityID: facility.ID()}, nil
}

// RestorePurchaseOrder rebuilds a purchase order loaded from persistence.
func RestorePurchaseOrder(
	p order.RestoreParams,
	vendorID, facilityID int64,
	requisitionID *kernel.UUID,
	additionalDiscount decimal.Decimal,
) (*PurchaseOrder, error) {
	o, err := order.RestoreOrder(Policy{}, p)
	if err != nil {
		return nil, err
	}
	po := &PurchaseOrder{
		Order:              o,
		vendorID:           vendorID,
		facilityID:         facilityID,
		requisitionID:      requisitionID,
		additionalDiscount: additionalDiscount,
	}
	if err = po.ValidateAdditionalDiscount(); err != nil {
		return nil, err
	}
	return po, nil
}

func (po *PurchaseOrder) VendorID() int64 {
	return po.vendorID
}

func (po *PurchaseOrder) FacilityID() int64 {
	return po.facilityID
}

// RequisitionID is nil for orders placed directly.
func (po *PurchaseOrder) RequisitionID() *kernel.UUID {
	return po.requisitionID
}

// LinkRequisition records the requisition this order was derived from. It is set once.
func (po *PurchaseOrder) LinkRequisition(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requisition id", err)
	}
	if po.requisitionID != nil && !po.requisitionID.IsEqual(id) {
		return errs.NewValueIsInvalidError("purchase order is already linked to a requisition")
	}
	po.requisitionID = &id
	return nil
}

// IsLive reports whether the order still occupies its requisition's purchasing slot.
func (po *PurchaseOrder) IsLive() bool {
	return !po.Status().IsTerminal()
}

// DiscountSubtotal is the sum of line discounts.
func (po *PurchaseOrder) DiscountSubtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range po.Items() {
		total = total.Add(item.Discount())
	}
	return total
}

// NetSubtotal is the gross subtotal less line discounts.
func (po *PurchaseOrder) NetSubtotal() decimal.Decimal {
	return po.Totals().SubTotal.Sub(po.DiscountSubtotal())
}

func (po *PurchaseOrder) AdditionalDiscount() decimal.Decimal {
	return po.additionalDiscount
}

// DiscountAmount is the line discounts plus the additional discount.
func (po *PurchaseOrder) DiscountAmount() decimal.Decimal {
	return po.DiscountSubtotal().Add(po.additionalDiscount)
}

// SetAdditionalDiscount records an order-level discount while the order is Processing.
// It may not exceed NetSubtotal.
func (po *PurchaseOrder) SetAdditionalDiscount(amount decimal.Decimal) error {
	if po.Status() != order.Processing {
		return errs.NewIllegalTransitionError("set additional discount", po.Status())
	}
	if err := checkAdditionalDiscount(amount, po.NetSubtotal()); err != nil {
		return err
	}
	po.additionalDiscount = amount
	return nil
}

// ValidateAdditionalDiscount fails once item changes have pushed NetSubtotal below
// the additional discount.
func (po *PurchaseOrder) ValidateAdditionalDiscount() error {
	return checkAdditionalDiscount(po.additionalDiscount, po.NetSubtotal())
}

func checkAdditionalDiscount(amount, netSubtotal decimal.Decimal) error {
	if amount.IsNegative() || amount.GreaterThan(netSubtotal) {
		return errs.NewValueIsOutOfRangeError("additional discount", amount.String(), 0, netSubtotal.String())
	}
	return nil
}

func validateParty(name string, p kernel.Party) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

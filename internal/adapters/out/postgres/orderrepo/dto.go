package orderrepo

import (
	"errors"
	"time"

	"supplychain/internal/adapters/out/postgres/pgcommon"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/purchase"
	"supplychain/internal/core/domain/model/sales"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Purchase and sales orders share it and
// are told apart by Kind; variant columns are null for the other kind.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind          string          `gorm:"type:varchar(16);not null;index"`
	Status        int             `gorm:"type:smallint;not null;index"`
	PaymentStatus int             `gorm:"type:smallint;not null;index"`
	FromLocation  string          `gorm:"type:varchar(512);not null"`
	ToLocation    string          `gorm:"type:varchar(512);not null"`
	VatRate       decimal.Decimal `gorm:"type:numeric(7,6);not null"`
	SubTotal      decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	VatAmount     decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	CreateUserID  string          `gorm:"type:varchar(128);not null"`
	CreateTime    time.Time       `gorm:"type:timestamptz;not null"`
	FinishUserID  string          `gorm:"type:varchar(128)"`
	FinishTime    *time.Time      `gorm:"type:timestamptz"`
	DeliverTime   *time.Time      `gorm:"type:timestamptz"`
	Problem       string          `gorm:"type:text"`
	InvoiceURL    string          `gorm:"type:text"`
	ReceiptURL    string          `gorm:"type:text"`
	Version       int64           `gorm:"not null"`

	VendorID      *int64     `gorm:"index"`
	FacilityID    *int64     `gorm:"index"`
	CustomerID    *int64     `gorm:"index"`
	RequisitionID *uuid.UUID `gorm:"type:uuid;index"`

	AdditionalDiscount decimal.Decimal `gorm:"type:numeric(20,6);not null;default:0"`

	Items  []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Events []EventDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID    int64           `gorm:"primaryKey;autoIncrement:false"`
	Position  int             `gorm:"not null"`
	Unit      string          `gorm:"type:varchar(32);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Quantity  decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Discount  decimal.Decimal `gorm:"type:numeric(20,6);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

type EventDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID  int64     `gorm:"primaryKey;autoIncrement:false"`
	Type     int       `gorm:"type:smallint;not null"`
	Location string    `gorm:"type:varchar(512);not null"`
	Message  string    `gorm:"type:text"`
	Time     time.Time `gorm:"type:timestamptz;not null"`
}

func (EventDTO) TableName() string {
	return "order_events"
}

func fromOrder(o *order.Order) OrderDTO {
	id := o.ID().Bytes()
	totals := o.Totals()
	lifecycle := o.Lifecycle()

	items := make([]ItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:   id,
			ItemID:    item.ItemID(),
			Position:  i,
			Unit:      item.Unit(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
			Discount:  item.Discount(),
		})
	}

	events := make([]EventDTO, 0, len(o.Events()))
	for _, e := range o.Events() {
		events = append(events, EventDTO{
			OrderID:  id,
			EventID:  e.ID(),
			Type:     int(e.Type()),
			Location: pgcommon.LocationColumn(e.Location()),
			Message:  e.Message(),
			Time:     e.Time(),
		})
	}

	return OrderDTO{
		ID:            id,
		Kind:          o.Kind().String(),
		Status:        int(o.Status()),
		PaymentStatus: int(o.PaymentStatus()),
		FromLocation:  pgcommon.LocationColumn(o.FromLocation()),
		ToLocation:    pgcommon.LocationColumn(o.ToLocation()),
		VatRate:       o.VatRate().Decimal(),
		SubTotal:      totals.SubTotal,
		VatAmount:     totals.VatAmount,
		TotalAmount:   totals.TotalAmount,
		CreateUserID:  lifecycle.CreateUserID(),
		CreateTime:    lifecycle.CreateTime(),
		FinishUserID:  lifecycle.FinishUserID(),
		FinishTime:    lifecycle.FinishTime(),
		DeliverTime:   o.DeliverTime(),
		Problem:       o.Problem(),
		InvoiceURL:    o.InvoiceURL(),
		ReceiptURL:    o.ReceiptURL(),
		Version:       o.Version(),
		Items:         items,
		Events:        events,
	}
}

func fromPurchaseOrder(po *purchase.PurchaseOrder) OrderDTO {
	dto := fromOrder(po.Order)
	vendorID, facilityID := po.VendorID(), po.FacilityID()
	dto.VendorID = &vendorID
	dto.FacilityID = &facilityID
	dto.RequisitionID = pgcommon.UUIDColumn(po.RequisitionID())
	dto.AdditionalDiscount = po.AdditionalDiscount()
	return dto
}

func fromSalesOrder(so *sales.SalesOrder) OrderDTO {
	dto := fromOrder(so.Order)
	customerID := so.CustomerID()
	dto.CustomerID = &customerID
	dto.FacilityID = so.FacilityID()
	return dto
}

func toRestoreParams(dto OrderDTO) (order.RestoreParams, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.RestoreParams{}, err
	}

	from, errFrom := pgcommon.LocationFromColumn(dto.FromLocation)
	to, errTo := pgcommon.LocationFromColumn(dto.ToLocation)
	rate, errRate := kernel.NewVatRate(dto.VatRate)
	if err = errors.Join(errFrom, errTo, errRate); err != nil {
		return order.RestoreParams{}, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, row := range dto.Items {
		item, itemErr := order.NewDiscountedItem(row.ItemID, row.Unit, row.UnitPrice, row.Quantity, row.Discount)
		if itemErr != nil {
			return order.RestoreParams{}, itemErr
		}
		items = append(items, item)
	}

	events := make([]order.Event, 0, len(dto.Events))
	for _, row := range dto.Events {
		loc, locErr := pgcommon.LocationFromColumn(row.Location)
		if locErr != nil {
			return order.RestoreParams{}, locErr
		}
		e, eventErr := order.NewEvent(row.EventID, order.EventType(row.Type), loc, row.Message, row.Time)
		if eventErr != nil {
			return order.RestoreParams{}, eventErr
		}
		events = append(events, e)
	}

	return order.RestoreParams{
		ID:            id,
		FromLocation:  from,
		ToLocation:    to,
		VatRate:       rate,
		Status:        order.Status(dto.Status),
		PaymentStatus: order.PaymentStatus(dto.PaymentStatus),
		Items:         items,
		Events:        events,
		Lifecycle:     kernel.RestoreLifecycle(dto.CreateUserID, dto.CreateTime, dto.FinishUserID, dto.FinishTime),
		DeliverTime:   dto.DeliverTime,
		Problem:       dto.Problem,
		InvoiceURL:    dto.InvoiceURL,
		ReceiptURL:    dto.ReceiptURL,
		Version:       dto.Version,
	}, nil
}

func toPurchaseOrder(dto OrderDTO) (*purchase.PurchaseOrder, error) {
	params, err := toRestoreParams(dto)
	if err != nil {
		return nil, err
	}
	requisitionID, err := pgcommon.UUIDFromColumn(dto.RequisitionID)
	if err != nil {
		return nil, err
	}
	return purchase.RestorePurchaseOrder(params, derefID(dto.VendorID), derefID(dto.FacilityID), requisitionID,
		dto.AdditionalDiscount)
}

func toSalesOrder(dto OrderDTO) (*sales.SalesOrder, error) {
	params, err := toRestoreParams(dto)
	if err != nil {
		return nil, err
	}
	return sales.RestoreSalesOrder(params, derefID(dto.CustomerID), dto.FacilityID)
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

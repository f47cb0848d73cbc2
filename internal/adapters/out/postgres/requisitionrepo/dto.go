package requisitionrepo

import (
	"errors"
	"time"

	"supplychain/internal/adapters/out/postgres/pgcommon"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/requisition"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequisitionDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorID       int64           `gorm:"not null;index"`
	VendorLocation string          `gorm:"type:varchar(512);not null"`
	FacilityID     int64           `gorm:"not null;index"`
	FacilityLoc    string          `gorm:"column:facility_location;type:varchar(512);not null"`
	VatRate        decimal.Decimal `gorm:"type:numeric(7,6);not null"`
	SubTotal       decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	VatAmount      decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Status         int             `gorm:"type:smallint;not null;index"`
	ApprovalStatus int             `gorm:"type:smallint;not null"`
	Finance        SignatureDTO    `gorm:"embedded;embeddedPrefix:finance_"`
	Production     SignatureDTO    `gorm:"embedded;embeddedPrefix:production_manager_"`
	CreateUserID   string          `gorm:"type:varchar(128);not null"`
	CreateTime     time.Time       `gorm:"type:timestamptz;not null"`
	FinishUserID   string          `gorm:"type:varchar(128)"`
	FinishTime     *time.Time      `gorm:"type:timestamptz"`
	Problem        string          `gorm:"type:text"`
	Version        int64           `gorm:"not null"`

	Items          []ItemDTO          `gorm:"foreignKey:RequisitionID;constraint:OnDelete:CASCADE"`
	PurchaseOrders []PurchaseOrderDTO `gorm:"foreignKey:RequisitionID;constraint:OnDelete:CASCADE"`
}

func (RequisitionDTO) TableName() string {
	return "requisitions"
}

// SignatureDTO is one approval slot; both columns are null while the slot is empty.
type SignatureDTO struct {
	UserID *string    `gorm:"type:varchar(128)"`
	Time   *time.Time `gorm:"type:timestamptz"`
}

type ItemDTO struct {
	RequisitionID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID        int64           `gorm:"primaryKey;autoIncrement:false"`
	Position      int             `gorm:"not null"`
	Unit          string          `gorm:"type:varchar(32);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Quantity      decimal.Decimal `gorm:"type:numeric(20,6);not null"`
}

func (ItemDTO) TableName() string {
	return "requisition_items"
}

// PurchaseOrderDTO links a requisition to a purchase order derived from it.
type PurchaseOrderDTO struct {
	RequisitionID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex"`
	Position        int       `gorm:"not null"`
}

func (PurchaseOrderDTO) TableName() string {
	return "requisition_purchase_orders"
}

func fromDomain(r *requisition.PurchaseRequisition) RequisitionDTO {
	id := r.ID().Bytes()
	totals := r.Totals()
	lifecycle := r.Lifecycle()

	items := make([]ItemDTO, 0, len(r.Items()))
	for i, item := range r.Items() {
		items = append(items, ItemDTO{
			RequisitionID: id,
			ItemID:        item.ItemID(),
			Position:      i,
			Unit:          item.Unit(),
			UnitPrice:     item.UnitPrice(),
			Quantity:      item.Quantity(),
		})
	}

	links := make([]PurchaseOrderDTO, 0, len(r.PurchaseOrderIDs()))
	for i, poID := range r.PurchaseOrderIDs() {
		links = append(links, PurchaseOrderDTO{
			RequisitionID:   id,
			PurchaseOrderID: poID.Bytes(),
			Position:        i,
		})
	}

	return RequisitionDTO{
		ID:             id,
		VendorID:       r.Vendor().ID(),
		VendorLocation: pgcommon.LocationColumn(r.Vendor().Location()),
		FacilityID:     r.Facility().ID(),
		FacilityLoc:    pgcommon.LocationColumn(r.Facility().Location()),
		VatRate:        r.VatRate().Decimal(),
		SubTotal:       totals.SubTotal,
		VatAmount:      totals.VatAmount,
		TotalAmount:    totals.TotalAmount,
		Status:         int(r.Status()),
		ApprovalStatus: int(r.ApprovalStatus()),
		Finance:        fromSignature(r.Approvals().Finance()),
		Production:     fromSignature(r.Approvals().ProductionManager()),
		CreateUserID:   lifecycle.CreateUserID(),
		CreateTime:     lifecycle.CreateTime(),
		FinishUserID:   lifecycle.FinishUserID(),
		FinishTime:     lifecycle.FinishTime(),
		Problem:        r.Problem(),
		Version:        r.Version(),
		Items:          items,
		PurchaseOrders: links,
	}
}

func fromSignature(s *requisition.Signature) SignatureDTO {
	if s == nil {
		return SignatureDTO{}
	}
	userID, at := s.UserID, s.Time
	return SignatureDTO{UserID: &userID, Time: &at}
}

func toSignature(dto SignatureDTO) *requisition.Signature {
	if dto.UserID == nil || dto.Time == nil {
		return nil
	}
	return &requisition.Signature{UserID: *dto.UserID, Time: *dto.Time}
}

func toDomain(dto RequisitionDTO) (*requisition.PurchaseRequisition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendor, errVendor := toParty(dto.VendorID, dto.VendorLocation)
	facility, errFacility := toParty(dto.FacilityID, dto.FacilityLoc)
	rate, errRate := kernel.NewVatRate(dto.VatRate)
	if err = errors.Join(errVendor, errFacility, errRate); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, row := range dto.Items {
		item, itemErr := order.NewItem(row.ItemID, row.Unit, row.UnitPrice, row.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	poIDs := make([]kernel.UUID, 0, len(dto.PurchaseOrders))
	for _, row := range dto.PurchaseOrders {
		poID, idErr := kernel.UUIDFromBytes(row.PurchaseOrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		poIDs = append(poIDs, poID)
	}

	return requisition.RestorePurchaseRequisition(requisition.RestoreParams{
		ID:               id,
		Vendor:           vendor,
		Facility:         facility,
		VatRate:          rate,
		Items:            items,
		Status:           requisition.Status(dto.Status),
		ApprovalStatus:   requisition.ApprovalStatus(dto.ApprovalStatus),
		Approvals:        requisition.RestoreApprovals(toSignature(dto.Finance), toSignature(dto.Production)),
		Lifecycle:        kernel.RestoreLifecycle(dto.CreateUserID, dto.CreateTime, dto.FinishUserID, dto.FinishTime),
		Problem:          dto.Problem,
		PurchaseOrderIDs: poIDs,
		Version:          dto.Version,
	})
}

func toParty(id int64, location string) (kernel.Party, error) {
	loc, err := kernel.NewLocation(location)
	if err != nil {
		return kernel.Party{}, err
	}
	return kernel.NewParty(id, loc)
}

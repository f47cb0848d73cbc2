package requisitionrepo

import (
	"context"

	"supplychain/internal/adapters/out/postgres/pgcommon"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/requisition"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormRequisitionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRequisitionRepository(db *gorm.DB, tracker aggregateTracker) *GormRequisitionRepository {
	return &GormRequisitionRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRequisitionRepository) Add(ctx context.Context, aggregate *requisition.PurchaseRequisition) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgcommon.MapWriteError("requisition id", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update succeeds only when the stored version still matches the loaded one.
func (r *GormRequisitionRepository) Update(ctx context.Context, aggregate *requisition.PurchaseRequisition) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loaded := dto.Version
	dto.Version = loaded + 1

	tx := r.db.WithContext(ctx)
	result := tx.Model(&RequisitionDTO{}).
		Where("id = ? AND version = ?", dto.ID, loaded).
		Select("*").
		Omit("Items", "PurchaseOrders").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.staleOrMissing(tx, aggregate.ID())
	}

	if err := tx.Where("requisition_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := tx.Create(&dto.Items).Error; err != nil {
			return pgcommon.MapWriteError("requisition item", err)
		}
	}

	if err := tx.Where("requisition_id = ?", dto.ID).Delete(&PurchaseOrderDTO{}).Error; err != nil {
		return err
	}
	if len(dto.PurchaseOrders) > 0 {
		if err := tx.Create(&dto.PurchaseOrders).Error; err != nil {
			return pgcommon.MapWriteError("purchase order link", err)
		}
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRequisitionRepository) Get(ctx context.Context, id kernel.UUID) (*requisition.PurchaseRequisition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequisitionDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("PurchaseOrders", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgcommon.MapReadError("requisition", id, err)
	}

	return toDomain(dto)
}

func (r *GormRequisitionRepository) staleOrMissing(tx *gorm.DB, id kernel.UUID) error {
	var count int64
	if err := tx.Model(&RequisitionDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("requisition", id.String())
	}
	return errs.NewVersionIsInvalidError("requisition version")
}

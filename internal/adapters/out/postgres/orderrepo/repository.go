package orderrepo

import (
	"context"

	"supplychain/internal/adapters/out/postgres/pgcommon"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/purchase"
	"supplychain/internal/core/domain/model/sales"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPurchaseOrderRepository persists purchase orders in the shared orders table.
type GormPurchaseOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPurchaseOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPurchaseOrderRepository) Add(ctx context.Context, aggregate *purchase.PurchaseOrder) error {
	if aggregate == nil {
		return order.ErrOrderIsNotConstructed
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromPurchaseOrder(aggregate)
	if err := insert(ctx, r.db, &dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPurchaseOrderRepository) Update(ctx context.Context, aggregate *purchase.PurchaseOrder) error {
	if aggregate == nil {
		return order.ErrOrderIsNotConstructed
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromPurchaseOrder(aggregate)
	if err := update(ctx, r.db, &dto); err != nil {
		return err
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchase.PurchaseOrder, error) {
	dto, err := find(ctx, r.db, order.KindPurchase, id)
	if err != nil {
		return nil, err
	}
	return toPurchaseOrder(dto)
}

// GetByRequisition returns the purchase orders derived from a requisition, oldest first.
func (r *GormPurchaseOrderRepository) GetByRequisition(
	ctx context.Context,
	requisitionID kernel.UUID,
) ([]*purchase.PurchaseOrder, error) {
	if err := requisitionID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := withChildren(r.db.WithContext(ctx)).
		Where("kind = ? AND requisition_id = ?", order.KindPurchase.String(), requisitionID.Bytes()).
		Order("create_time, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*purchase.PurchaseOrder, 0, len(dtos))
	for _, dto := range dtos {
		po, err := toPurchaseOrder(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, po)
	}

	return orders, nil
}

// GormSalesOrderRepository persists sales orders in the shared orders table.
type GormSalesOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormSalesOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormSalesOrderRepository) Add(ctx context.Context, aggregate *sales.SalesOrder) error {
	if aggregate == nil {
		return order.ErrOrderIsNotConstructed
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromSalesOrder(aggregate)
	if err := insert(ctx, r.db, &dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSalesOrderRepository) Update(ctx context.Context, aggregate *sales.SalesOrder) error {
	if aggregate == nil {
		return order.ErrOrderIsNotConstructed
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromSalesOrder(aggregate)
	if err := update(ctx, r.db, &dto); err != nil {
		return err
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSalesOrderRepository) Get(ctx context.Context, id kernel.UUID) (*sales.SalesOrder, error) {
	dto, err := find(ctx, r.db, order.KindSales, id)
	if err != nil {
		return nil, err
	}
	return toSalesOrder(dto)
}

func insert(ctx context.Context, db *gorm.DB, dto *OrderDTO) error {
	return pgcommon.MapWriteError("order id", db.WithContext(ctx).Create(dto).Error)
}

// update writes the order row guarded by the loaded version, then rewrites items and events.
func update(ctx context.Context, db *gorm.DB, dto *OrderDTO) error {
	tx := db.WithContext(ctx)
	loaded := dto.Version
	dto.Version = loaded + 1

	result := tx.Model(&OrderDTO{}).
		Where("id = ? AND kind = ? AND version = ?", dto.ID, dto.Kind, loaded).
		Select("*").
		Omit("Items", "Events").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return staleOrMissing(tx, dto)
	}

	if err := tx.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := tx.Create(&dto.Items).Error; err != nil {
			return pgcommon.MapWriteError("order item", err)
		}
	}

	if err := tx.Where("order_id = ?", dto.ID).Delete(&EventDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Events) > 0 {
		if err := tx.Create(&dto.Events).Error; err != nil {
			return pgcommon.MapWriteError("order event", err)
		}
	}

	return nil
}

func staleOrMissing(tx *gorm.DB, dto *OrderDTO) error {
	var count int64
	if err := tx.Model(&OrderDTO{}).Where("id = ? AND kind = ?", dto.ID, dto.Kind).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(dto.Kind+" order", dto.ID.String())
	}
	return errs.NewVersionIsInvalidError(dto.Kind + " order version")
}

func find(ctx context.Context, db *gorm.DB, kind order.Kind, id kernel.UUID) (OrderDTO, error) {
	if err := id.Validate(); err != nil {
		return OrderDTO{}, err
	}

	var dto OrderDTO
	if err := withChildren(db.WithContext(ctx)).
		First(&dto, "id = ? AND kind = ?", id.Bytes(), kind.String()).Error; err != nil {
		return OrderDTO{}, pgcommon.MapReadError(kind.String()+" order", id, err)
	}

	return dto, nil
}

func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("event_id") })
}

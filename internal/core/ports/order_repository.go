// Package ports defines the persistence contracts the order lifecycle core needs.
// Adapters implement them; command handlers depend only on these interfaces.
package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/purchase"
	"supplychain/internal/core/domain/model/sales"
)

// PurchaseOrderRepository stores purchase orders together with their items and events.
type PurchaseOrderRepository interface {
	// Add persists a new purchase order.
	Add(ctx context.Context, aggregate *purchase.PurchaseOrder) error

	// Update persists changes to an existing purchase order. It fails with
	// errs.VersionIsInvalidError when the stored version no longer matches.
	Update(ctx context.Context, aggregate *purchase.PurchaseOrder) error

	// Get loads the full aggregate or fails with errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*purchase.PurchaseOrder, error)

	// GetByRequisition loads every purchase order derived from a requisition, oldest first.
	GetByRequisition(ctx context.Context, requisitionID kernel.UUID) ([]*purchase.PurchaseOrder, error)
}

// SalesOrderRepository stores sales orders together with their items and events.
type SalesOrderRepository interface {
	Add(ctx context.Context, aggregate *sales.SalesOrder) error
	Update(ctx context.Context, aggregate *sales.SalesOrder) error
	Get(ctx context.Context, id kernel.UUID) (*sales.SalesOrder, error)
}

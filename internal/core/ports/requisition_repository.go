package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/requisition"
)

// RequisitionRepository stores purchase requisitions with their items and approvals.
type RequisitionRepository interface {
	Add(ctx context.Context, aggregate *requisition.PurchaseRequisition) error

	// Update fails with errs.VersionIsInvalidError on a stale snapshot.
	Update(ctx context.Context, aggregate *requisition.PurchaseRequisition) error

	Get(ctx context.Context, id kernel.UUID) (*requisition.PurchaseRequisition, error)
}

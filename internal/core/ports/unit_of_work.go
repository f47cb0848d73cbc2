package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for every command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after Begin
// share its transaction, so a requisition and the purchase order derived from it
// commit or roll back together.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	PurchaseOrderRepository() PurchaseOrderRepository
	SalesOrderRepository() SalesOrderRepository
	RequisitionRepository() RequisitionRepository
}

// Package commands contains the operations that change requisitions and orders.
// Every command is a guarded value built by its constructor; its handler runs the
// operation inside one unit of work: Begin, deferred Rollback, Commit.
package commands

import (
	"context"

	"supplychain/internal/core/ports"
)

// Unit of Work interfaces, segregated by the repositories a handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	SalesOrderRepoFactory interface {
		SalesOrderRepository() ports.SalesOrderRepository
	}

	RequisitionRepoFactory interface {
		RequisitionRepository() ports.RequisitionRepository
	}

	// RequisitionUoW is used by commands that only touch requisitions.
	RequisitionUoW interface {
		TxManager
		RequisitionRepoFactory
	}

	RequisitionUoWFactory interface {
		Create() RequisitionUoW
	}

	// OrderUoW is used by lifecycle commands on purchase or sales orders.
	OrderUoW interface {
		TxManager
		PurchaseOrderRepoFactory
		SalesOrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans requisitions and purchase orders. Derivation uses it to commit
	// both aggregates atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   requisitions := uow.RequisitionRepository()
	//   purchaseOrders := uow.PurchaseOrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RequisitionRepoFactory
		PurchaseOrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

package commands

import (
	"context"
	"strings"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/requisition"
	"supplychain/internal/pkg/errs"
)

// OrderRef addresses an order of either variant.
type OrderRef struct {
	kind order.Kind
	id   kernel.UUID
}

// NewOrderRef validates the variant and identifier.
func NewOrderRef(kind order.Kind, id kernel.UUID) (OrderRef, error) {
	if err := kind.Validate(); err != nil {
		return OrderRef{}, err
	}
	if err := id.Validate(); err != nil {
		return OrderRef{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return OrderRef{kind: kind, id: id}, nil
}

func (r OrderRef) Kind() order.Kind {
	return r.kind
}

func (r OrderRef) ID() kernel.UUID {
	return r.id
}

// saveFunc writes a loaded order back through the repository it came from.
type saveFunc func(ctx context.Context) error

// loadOrder fetches the lifecycle engine of the referenced order inside uow.
func loadOrder(ctx context.Context, uow OrderUoW, ref OrderRef) (*order.Order, saveFunc, error) {
	switch ref.Kind() {
	case order.KindPurchase:
		repo := uow.PurchaseOrderRepository()
		po, err := repo.Get(ctx, ref.ID())
		if err != nil {
			return nil, nil, err
		}
		return po.Order, func(ctx context.Context) error {
			if err := po.ValidateAdditionalDiscount(); err != nil {
				return err
			}
			return repo.Update(ctx, po)
		}, nil
	case order.KindSales:
		repo := uow.SalesOrderRepository()
		so, err := repo.Get(ctx, ref.ID())
		if err != nil {
			return nil, nil, err
		}
		return so.Order, func(ctx context.Context) error { return repo.Update(ctx, so) }, nil
	}
	return nil, nil, ref.Kind().Validate()
}

// mutateOrder runs fn against the referenced order in its own transaction.
func mutateOrder(ctx context.Context, factory OrderUoWFactory, ref OrderRef, fn func(*order.Order) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, save, err := loadOrder(ctx, uow, ref)
	if err != nil {
		return err
	}

	if err = fn(o); err != nil {
		return err
	}

	if err = save(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// mutateRequisition is the requisition counterpart of mutateOrder.
func mutateRequisition(
	ctx context.Context,
	factory RequisitionUoWFactory,
	id kernel.UUID,
	fn func(*requisition.PurchaseRequisition) error,
) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RequisitionRepository()
	r, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = fn(r); err != nil {
		return err
	}

	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func validateRequisitionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requisition id", err)
	}
	return nil
}

func validateProblem(problem string) error {
	if strings.TrimSpace(problem) == "" {
		return errs.NewValueIsRequiredError("problem")
	}
	return nil
}

package cmd

import (
	"log/slog"
	"net/http"

	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	registry   *prometheus.Registry
	jobMetrics *jobs.Metrics
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   registry,
		jobMetrics: jobs.NewMetrics(registry),
	}
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *CompositionRoot) requisitionUoWFactory() commands.RequisitionUoWFactory {
	return FuncRequisitionUoWFactory(func() commands.RequisitionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRequisitionCommandHandler() commands.CreateRequisitionCommandHandler {
	return commands.NewCreateRequisitionCommandHandler(c.requisitionUoWFactory())
}

func (c *CompositionRoot) CreateReplaceRequisitionItemsCommandHandler() commands.ReplaceRequisitionItemsCommandHandler {
	return commands.NewReplaceRequisitionItemsCommandHandler(c.requisitionUoWFactory())
}

func (c *CompositionRoot) CreateApproveRequisitionCommandHandler() commands.ApproveRequisitionCommandHandler {
	return commands.NewApproveRequisitionCommandHandler(c.requisitionUoWFactory())
}

func (c *CompositionRoot) CreateRejectRequisitionCommandHandler() commands.RejectRequisitionCommandHandler {
	return commands.NewRejectRequisitionCommandHandler(c.requisitionUoWFactory())
}

func (c *CompositionRoot) CreateDelayRequisitionCommandHandler() commands.DelayRequisitionCommandHandler {
	return commands.NewDelayRequisitionCommandHandler(c.requisitionUoWFactory())
}

func (c *CompositionRoot) CreateCancelRequisitionCommandHandler() commands.CancelRequisitionCommandHandler {
	return commands.NewCancelRequisitionCommandHandler(c.requisitionUoWFactory())
}

func (c *CompositionRoot) CreateCompleteRequisitionCommandHandler() commands.CompleteRequisitionCommandHandler {
	return commands.NewCompleteRequisitionCommandHandler(c.requisitionUoWFactory())
}

func (c *CompositionRoot) CreateGeneratePurchaseOrderCommandHandler() commands.GeneratePurchaseOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewGeneratePurchaseOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateSalesOrderCommandHandler() commands.CreateSalesOrderCommandHandler {
	return commands.NewCreateSalesOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderPaymentCommandHandler() commands.CompleteOrderPaymentCommandHandler {
	return commands.NewCompleteOrderPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordOrderEventCommandHandler() commands.RecordOrderEventCommandHandler {
	return commands.NewRecordOrderEventCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateEditOrderEventCommandHandler() commands.EditOrderEventCommandHandler {
	return commands.NewEditOrderEventCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReplaceOrderItemsCommandHandler() commands.ReplaceOrderItemsCommandHandler {
	return commands.NewReplaceOrderItemsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAttachOrderDocumentCommandHandler() commands.AttachOrderDocumentCommandHandler {
	return commands.NewAttachOrderDocumentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetPurchaseOrderDiscountCommandHandler() commands.SetPurchaseOrderDiscountCommandHandler {
	return commands.NewSetPurchaseOrderDiscountCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetUnfinishedOrdersQueryHandler() queries.GetUnfinishedOrdersQueryHandler {
	return queries.NewGetUnfinishedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDuePaymentsQueryHandler() queries.GetDuePaymentsQueryHandler {
	return queries.NewGetDuePaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.cfg.Jobs(),
		c.CreateGetDuePaymentsQueryHandler(),
		c.CreateGetUnfinishedOrdersQueryHandler(),
		c.jobMetrics,
		c.logger,
	)
}

type FuncRequisitionUoWFactory func() commands.RequisitionUoW

func (f FuncRequisitionUoWFactory) Create() commands.RequisitionUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "checkout/internal/adapters/in/http"
	"checkout/internal/adapters/out/postgres"
	"checkout/internal/adapters/out/yamlconfig"
	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/services"
	"checkout/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	flow       checkout.Flow
	selector   services.DeliveryModeSelector
	logger     *slog.Logger
}

// NewCompositionRoot loads the checkout flow and wires the adapters around gormDB.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	flow, err := yamlconfig.LoadFlow(config.CheckoutConfigPath)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("load checkout flow: %w", err)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		flow:       flow,
		selector:   services.NewDeliveryModeSelector(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Flow() checkout.Flow {
	return c.flow
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCartCommandHandler() commands.CreateCartCommandHandler {
	return commands.NewCreateCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateAddDeliveryModeCommandHandler() commands.AddDeliveryModeCommandHandler {
	return commands.NewAddDeliveryModeCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateSetDeliveryModeCommandHandler() commands.SetDeliveryModeCommandHandler {
	return commands.NewSetDeliveryModeCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateSelectPreferredDeliveryModeCommandHandler() commands.SelectPreferredDeliveryModeCommandHandler {
	return commands.NewSelectPreferredDeliveryModeCommandHandler(
		c.cartUoWFactory(), c.selector, c.flow.DefaultDeliveryMode())
}

func (c *CompositionRoot) CreateAssignPreferredDeliveryModesCommandHandler() commands.AssignPreferredDeliveryModesCommandHandler {
	return commands.NewAssignPreferredDeliveryModesCommandHandler(
		c.cartUoWFactory(), c.selector, c.flow.DefaultDeliveryMode(), c.config.AssignmentBatchSize)
}

func (c *CompositionRoot) CreateGetCartDeliveryModesQueryHandler() queries.GetCartDeliveryModesQueryHandler {
	return queries.NewGetCartDeliveryModesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartsWithoutDeliveryModeQueryHandler() queries.GetCartsWithoutDeliveryModeQueryHandler {
	return queries.NewGetCartsWithoutDeliveryModeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateCart:                  c.CreateCreateCartCommandHandler(),
		AddDeliveryMode:             c.CreateAddDeliveryModeCommandHandler(),
		SetDeliveryMode:             c.CreateSetDeliveryModeCommandHandler(),
		SelectPreferredDeliveryMode: c.CreateSelectPreferredDeliveryModeCommandHandler(),
		GetCartDeliveryModes:        c.CreateGetCartDeliveryModesQueryHandler(),
		GetCartsWithoutDeliveryMode: c.CreateGetCartsWithoutDeliveryModeQueryHandler(),
	}, c.flow, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.logger,
		jobs.NewDeliveryModeAssignmentJob(
			c.CreateAssignPreferredDeliveryModesCommandHandler(), c.config.AssignmentSchedule, c.logger),
	)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/memory"
	"storefront/internal/adapters/out/nop"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/redis"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"
	"storefront/internal/pkg/keylock"

	goredis "github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	locker     *keylock.Striped
	cache      ports.CartCache
	publisher  ports.OrderEventPublisher
	closers    []func() error
}

// NewCompositionRoot opens the configured storage, cache and event publisher.
// Without REDIS_ADDR carts are not cached; without KAFKA_HOST status events are
// dropped.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:    config,
		logger:    logger,
		locker:    keylock.New(keylock.DefaultStripes),
		cache:     nop.CartCache{},
		publisher: nop.OrderEventPublisher{},
	}

	switch config.StorageDriver {
	case StoragePostgres:
		db, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err = postgres.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		root.closers = append(root.closers, sqlDB.Close)
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
	default:
		root.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
	}

	if config.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: config.RedisAddr})
		root.closers = append(root.closers, client.Close)
		root.cache = redis.NewCartCache(client, config.CartCacheTTL)
	}

	if config.KafkaHost != "" {
		publisher := kafka.NewOrderEventPublisher(config.KafkaOrderChangedTopic, config.KafkaHost)
		root.closers = append(root.closers, publisher.Close)
		root.publisher = publisher
	}

	logger.Info("composition root ready",
		"storage", config.StorageDriver,
		"cache", config.RedisAddr != "",
		"events", config.KafkaHost != "",
	)
	return root, nil
}

// Close releases connections in reverse order of acquisition.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	return err
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGetOrCreateCartCommandHandler() commands.GetOrCreateCartCommandHandler {
	return commands.NewGetOrCreateCartCommandHandler(c.cartUoWFactory(), c.locker, c.logger)
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.cartUoWFactory(), c.locker, c.cache, c.logger)
}

func (c *CompositionRoot) CreateRemoveFromCartCommandHandler() commands.RemoveFromCartCommandHandler {
	return commands.NewRemoveFromCartCommandHandler(c.cartUoWFactory(), c.locker, c.cache, c.logger)
}

func (c *CompositionRoot) CreateUpdateCartItemQuantityCommandHandler() commands.UpdateCartItemQuantityCommandHandler {
	return commands.NewUpdateCartItemQuantityCommandHandler(c.cartUoWFactory(), c.locker, c.cache, c.logger)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory(), c.locker, c.cache, c.logger)
}

func (c *CompositionRoot) CreateDeleteCartCommandHandler() commands.DeleteCartCommandHandler {
	return commands.NewDeleteCartCommandHandler(c.cartUoWFactory(), c.locker, c.cache, c.logger)
}

func (c *CompositionRoot) CreateExpireCartsCommandHandler() commands.ExpireCartsCommandHandler {
	return commands.NewExpireCartsCommandHandler(c.cartUoWFactory(), c.locker, c.cache, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.config.DefaultTaxRate, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.locker, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.locker, c.logger)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.uowFactory, c.locker, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCanTransitionQueryHandler() queries.CanTransitionQueryHandler {
	return queries.NewCanTransitionQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(c.uowFactory)
}

// CreateHTTPServer wires every use case into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		GetOrCreateCart:        c.CreateGetOrCreateCartCommandHandler(),
		AddToCart:              c.CreateAddToCartCommandHandler(),
		RemoveFromCart:         c.CreateRemoveFromCartCommandHandler(),
		UpdateCartItemQuantity: c.CreateUpdateCartItemQuantityCommandHandler(),
		ClearCart:              c.CreateClearCartCommandHandler(),
		DeleteCart:             c.CreateDeleteCartCommandHandler(),
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:      c.CreateUpdateOrderStatusCommandHandler(),
		DeleteOrder:            c.CreateDeleteOrderCommandHandler(),
		GetCart:                c.CreateGetCartQueryHandler(),
		GetOrder:               c.CreateGetOrderQueryHandler(),
		ListOrders:             c.CreateListOrdersQueryHandler(),
		CanTransition:          c.CreateCanTransitionQueryHandler(),
		GetStatusHistory:       c.CreateGetStatusHistoryQueryHandler(),
	}, c.logger)
}

// CreateJobManager wires the background jobs. Cart expiry is opt-in: without
// CART_EXPIRY_SCHEDULE carts are only ever deleted explicitly.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var scheduled []jobs.Job
	if c.config.CartExpirySchedule != "" {
		expire := c.CreateExpireCartsCommandHandler()
		scheduled = append(scheduled,
			jobs.NewCartExpiryJob(&expire, c.config.CartExpirySchedule, c.config.CartExpiryAge, c.logger))
	}
	return jobs.NewJobManager(scheduled...)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

package provider

import (
	"github.com/lumapos/internal/cache"
	"github.com/lumapos/internal/config"
	"github.com/lumapos/internal/logger"
	"github.com/lumapos/internal/models"
	"github.com/lumapos/internal/queue"
	"github.com/lumapos/internal/repository"
	"github.com/lumapos/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo  repository.ProductRepository
	CustomerRepo repository.CustomerRepository
	DiscountRepo repository.DiscountRepository
	SaleRepo     repository.SaleRepository
	SettingRepo  repository.SettingRepository

	// Services
	ProductService       *service.ProductService
	CustomerService      *service.CustomerService
	CartService          *service.CartService
	DiscountService      *service.DiscountService
	DiscountAdminService *service.DiscountAdminService
	SettingService       *service.SettingService
	SaleService          *service.SaleService
	ReportService        *service.ReportService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.DiscountRepo = repository.NewDiscountRepository(db)
	c.SaleRepo = repository.NewSaleRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
}

func (c *Container) initServices() {
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo)
	c.CartService = service.NewCartService(c.ProductRepo)
	c.DiscountService = service.NewDiscountService(c.DiscountRepo, c.ProductRepo)
	c.DiscountAdminService = service.NewDiscountAdminService(c.DiscountRepo)
	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.SaleService = service.NewSaleService(
		models.DB,
		c.SaleRepo,
		c.CustomerRepo,
		c.CartService,
		c.DiscountService,
		c.SettingService,
		c.QueueClient,
	)
	c.ReportService = service.NewReportService(c.SaleRepo)
}

// Close 释放容器持有的外部资源
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
}

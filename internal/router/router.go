package router

import (
	"github.com/lumapos/internal/config"
	adminhandlers "github.com/lumapos/internal/http/handlers/admin"
	poshandlers "github.com/lumapos/internal/http/handlers/pos"
	"github.com/lumapos/internal/logger"
	"github.com/lumapos/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按收银台/后台分组）
	posHandler := poshandlers.New(c)
	adminHandler := adminhandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 收银台接口
		pos := apiV1.Group("/pos")
		{
			pos.GET("/config", posHandler.GetStoreConfig)
			pos.GET("/products", posHandler.ListProducts)
			pos.GET("/products/lookup", posHandler.LookupProduct)
			pos.GET("/customers", posHandler.ListCustomers)
			pos.GET("/customers/:id", posHandler.GetCustomer)
			pos.POST("/checkout/preview", posHandler.PreviewCheckout)
			pos.POST("/checkout", posHandler.Checkout)
			pos.POST("/drafts", posHandler.SaveDraft)
			pos.GET("/drafts", posHandler.ListDrafts)
			pos.POST("/drafts/:id/complete", posHandler.CompleteDraft)
			pos.GET("/sales", posHandler.ListSales)
			pos.GET("/sales/:id", posHandler.GetSale)
		}

		// 后台管理接口
		admin := apiV1.Group("/admin")
		{
			admin.GET("/products", adminHandler.ListProducts)
			admin.GET("/products/:id", adminHandler.GetProduct)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.GET("/customers", adminHandler.ListCustomers)
			admin.GET("/customers/:id", adminHandler.GetCustomer)
			admin.POST("/customers", adminHandler.CreateCustomer)
			admin.PUT("/customers/:id", adminHandler.UpdateCustomer)
			admin.DELETE("/customers/:id", adminHandler.DeleteCustomer)
			admin.POST("/customers/:id/settle-credit", adminHandler.SettleCredit)

			admin.GET("/discounts", adminHandler.ListDiscounts)
			admin.GET("/discounts/:id", adminHandler.GetDiscount)
			admin.POST("/discounts", adminHandler.CreateDiscount)
			admin.PUT("/discounts/:id", adminHandler.UpdateDiscount)
			admin.DELETE("/discounts/:id", adminHandler.DeleteDiscount)
			admin.POST("/discounts/:id/active", adminHandler.SetDiscountActive)

			admin.GET("/settings/store", adminHandler.GetStoreConfig)
			admin.PUT("/settings/store", adminHandler.UpdateStoreConfig)

			admin.GET("/reports/summary", adminHandler.GetSalesSummary)
		}
	}

	// 健康检查
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/config"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/presentation/http/handler"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/presentation/http/middleware"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth           *handler.AuthHandler
	Customer       *handler.CustomerHandler
	Transaction    *handler.TransactionHandler
	B2CTransaction *handler.B2CTransactionHandler
	Pricing        *handler.PricingHandler
	Cylinder       *handler.CylinderHandler
	Reconciliation *handler.ReconciliationHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiterCfg := middleware.DefaultRateLimiterConfig()
		if deps.Cfg.RateLimit.Requests > 0 && deps.Cfg.RateLimit.Duration > 0 {
			rateLimiterCfg = middleware.RateLimiterConfig{
				RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
				BurstSize:         deps.Cfg.RateLimit.Requests,
				CleanupInterval:   5 * time.Minute,
				EntryTTL:          10 * time.Minute,
			}
		}
		rateLimiter := middleware.NewClientRateLimiter(rateLimiterCfg)
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(r *gin.RouterGroup, h *Handlers) {
	adminOnly := middleware.RequireRole(entity.RoleAdmin)

	// Account
	r.POST("/auth/logout", h.Auth.Logout)
	r.POST("/auth/register", adminOnly, h.Auth.Register)
	r.GET("/profile", h.Auth.GetProfile)
	r.POST("/profile/change-password", h.Auth.ChangePassword)

	// B2B customers
	customers := r.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", adminOnly, h.Customer.Delete)
		customers.GET("/:id/statement", h.Reconciliation.CustomerStatement)
	}

	// Walk-in customers
	b2cCustomers := r.Group("/b2c/customers")
	{
		b2cCustomers.GET("", h.Customer.ListB2C)
		b2cCustomers.POST("", h.Customer.CreateB2C)
		b2cCustomers.GET("/:id", h.Customer.GetB2C)
		b2cCustomers.GET("/:id/statement", h.Reconciliation.B2CCustomerStatement)
		b2cCustomers.GET("/:id/holdings", h.B2CTransaction.ListHoldings)
	}

	// B2B ledger
	transactions := r.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.POST("", h.Transaction.Post)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.POST("/:id/void", adminOnly, h.Transaction.Void)
	}

	// Walk-in ledger
	b2cTransactions := r.Group("/b2c/transactions")
	{
		b2cTransactions.GET("", h.B2CTransaction.List)
		b2cTransactions.POST("", h.B2CTransaction.Post)
		b2cTransactions.GET("/:id", h.B2CTransaction.Get)
		b2cTransactions.POST("/:id/void", adminOnly, h.B2CTransaction.Void)
	}

	// Pricing
	pricing := r.Group("/pricing")
	{
		pricing.GET("/plant-prices", h.Pricing.ListPlantPrices)
		pricing.GET("/plant-prices/current", h.Pricing.GetPlantPrice)
		pricing.POST("/plant-prices", adminOnly, h.Pricing.SetPlantPrice)
		pricing.GET("/quote", h.Pricing.Quote)
		pricing.GET("/margin-categories", h.Pricing.ListMarginCategories)
		pricing.POST("/margin-categories", adminOnly, h.Pricing.CreateMarginCategory)
		pricing.PUT("/margin-categories/:id", adminOnly, h.Pricing.UpdateMarginCategory)
	}

	// Cylinder fleet
	cylinders := r.Group("/cylinders")
	{
		cylinders.GET("", h.Cylinder.List)
		cylinders.POST("", h.Cylinder.Register)
		cylinders.GET("/summary", h.Cylinder.StockSummary)
		cylinders.GET("/:id", h.Cylinder.Get)
		cylinders.POST("/:id/transition", h.Cylinder.Transition)
	}

	// Depot locations
	r.GET("/stores", h.Cylinder.ListStores)
	r.POST("/stores", adminOnly, h.Cylinder.CreateStore)
	r.GET("/vehicles", h.Cylinder.ListVehicles)
	r.POST("/vehicles", adminOnly, h.Cylinder.CreateVehicle)

	// Reconciliation
	r.GET("/reconciliation/audit", adminOnly, h.Reconciliation.AuditBalances)
}

package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/application/service"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/config"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/infrastructure/database"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/infrastructure/repository"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/presentation/http/handler"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/presentation/http/routes"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/billno"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.App.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, cfg); err != nil {
		slog.Error("failed to seed default data", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	b2cCustomerRepo := repository.NewB2CCustomerRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	b2cTransactionRepo := repository.NewB2CTransactionRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	plantPriceRepo := repository.NewPlantPriceRepository(db)
	marginRepo := repository.NewMarginCategoryRepository(db)
	cylinderRepo := repository.NewCylinderRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	txManager := repository.NewTxManager(db)

	// Shared helpers
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)
	b2bBills := billno.NewGenerator(cfg.Billing.BillPrefix)
	b2cBills := billno.NewGenerator(cfg.Billing.B2CBillPrefix)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo, b2cCustomerRepo, marginRepo)
	ledgerService := service.NewLedgerService(customerRepo, transactionRepo, b2bBills, txManager)
	b2cService := service.NewB2CService(b2cCustomerRepo, b2cTransactionRepo, holdingRepo, b2cBills, txManager)
	pricingService := service.NewPricingService(plantPriceRepo, marginRepo)
	cylinderService := service.NewCylinderService(cylinderRepo, storeRepo, vehicleRepo, txManager)
	reconciliationService := service.NewReconciliationService(customerRepo, transactionRepo, b2cCustomerRepo, b2cTransactionRepo)

	// Handlers
	handlers := &routes.Handlers{
		Auth:           handler.NewAuthHandler(authService),
		Customer:       handler.NewCustomerHandler(customerService),
		Transaction:    handler.NewTransactionHandler(ledgerService),
		B2CTransaction: handler.NewB2CTransactionHandler(b2cService),
		Pricing:        handler.NewPricingHandler(pricingService),
		Cylinder:       handler.NewCylinderHandler(cylinderService),
		Reconciliation: handler.NewReconciliationHandler(reconciliationService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	slog.Info("server starting", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

package database

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/config"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	slog.Info("connected to postgres", "host", cfg.Host, "database", cfg.Name)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	slog.Info("running database migrations")

	err := db.AutoMigrate(
		&entity.User{},

		// Pricing
		&entity.PlantPrice{},
		&entity.MarginCategory{},

		// Customers
		&entity.Customer{},
		&entity.B2CCustomer{},

		// Ledger
		&entity.Transaction{},
		&entity.LineItem{},
		&entity.B2CTransaction{},
		&entity.B2CLineItem{},
		&entity.CylinderHolding{},

		// Assets
		&entity.Store{},
		&entity.Vehicle{},
		&entity.Cylinder{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("database migrations completed")
	return nil
}

// SeedDefaultData seeds margin categories and the initial admin user.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	categories := []entity.MarginCategory{
		{Name: "Domestic", MarginPerKg: decimal.NewFromInt(23), Active: true},
		{Name: "Commercial", MarginPerKg: decimal.NewFromInt(18), Active: true},
		{Name: "Wholesale", MarginPerKg: decimal.NewFromInt(12), Active: true},
	}
	for i := range categories {
		var existing entity.MarginCategory
		if err := db.Where("name = ?", categories[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&categories[i]).Error; err != nil {
				slog.Warn("failed to seed margin category", "name", categories[i].Name, "error", err)
			}
		}
	}

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		var existing entity.User
		if err := db.Where("email = ?", cfg.Admin.Email).First(&existing).Error; err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			name := cfg.Admin.Name
			if name == "" {
				name = "Administrator"
			}
			admin := entity.User{
				Name:     name,
				Email:    cfg.Admin.Email,
				Password: string(hashed),
				Role:     entity.RoleAdmin,
			}
			if err := db.Create(&admin).Error; err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}
			slog.Info("admin user created", "email", cfg.Admin.Email)
		}
	}

	return nil
}

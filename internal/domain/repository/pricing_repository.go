package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
)

// PlantPriceRepository defines the interface for daily plant price data operations
type PlantPriceRepository interface {
	// UpsertByDate inserts the price for a date or overwrites an existing
	// row for the same date.
	UpsertByDate(ctx context.Context, price *entity.PlantPrice) error
	GetByDate(ctx context.Context, date time.Time) (*entity.PlantPrice, error)
	// GetLatest returns the most recent price on or before the given date.
	GetLatest(ctx context.Context, onOrBefore time.Time) (*entity.PlantPrice, error)
	ListRange(ctx context.Context, from, to time.Time) ([]entity.PlantPrice, error)
}

// MarginCategoryRepository defines the interface for margin category data operations
type MarginCategoryRepository interface {
	Create(ctx context.Context, category *entity.MarginCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MarginCategory, error)
	GetByName(ctx context.Context, name string) (*entity.MarginCategory, error)
	Update(ctx context.Context, category *entity.MarginCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.MarginCategory, error)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/pricing"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/repository"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/apperror"
)

// PricingService manages daily plant prices and margin categories and
// quotes cylinder prices from them.
type PricingService struct {
	plantPriceRepo repository.PlantPriceRepository
	marginRepo     repository.MarginCategoryRepository
}

// NewPricingService creates a new pricing service
func NewPricingService(
	plantPriceRepo repository.PlantPriceRepository,
	marginRepo repository.MarginCategoryRepository,
) *PricingService {
	return &PricingService{
		plantPriceRepo: plantPriceRepo,
		marginRepo:     marginRepo,
	}
}

// SetPlantPrice records the plant price for a date, overwriting any
// earlier price for the same date.
func (s *PricingService) SetPlantPrice(ctx context.Context, date time.Time, price decimal.Decimal) (*entity.PlantPrice, error) {
	if price.IsNegative() {
		return nil, apperror.ErrInvalidPricingInput
	}
	p := &entity.PlantPrice{Date: date, Price118Kg: price}
	if err := s.plantPriceRepo.UpsertByDate(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPlantPrice returns the plant price effective on a date, falling back
// to the most recent earlier date.
func (s *PricingService) GetPlantPrice(ctx context.Context, date time.Time) (*entity.PlantPrice, error) {
	price, err := s.plantPriceRepo.GetLatest(ctx, date)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, apperror.NewNotFoundError("Plant price")
	}
	return price, nil
}

// ListPlantPrices returns the price history for a date range.
func (s *PricingService) ListPlantPrices(ctx context.Context, from, to time.Time) ([]entity.PlantPrice, error) {
	return s.plantPriceRepo.ListRange(ctx, from, to)
}

// Quote is a priced cylinder for one margin category on one date.
type Quote struct {
	Date           time.Time         `json:"date"`
	CylinderType   enum.CylinderType `json:"cylinder_type"`
	PlantPrice     decimal.Decimal   `json:"plant_price"`
	MarginPerKg    decimal.Decimal   `json:"margin_per_kg"`
	UnitPricePerKg decimal.Decimal   `json:"unit_price_per_kg"`
	CylinderPrice  decimal.Decimal   `json:"cylinder_price"`
}

// QuoteCylinder derives the billable price of a cylinder for a margin
// category on a date. Rounding happens only here, at the quoted edge.
func (s *PricingService) QuoteCylinder(ctx context.Context, date time.Time, categoryID uuid.UUID, cylinderType enum.CylinderType) (*Quote, error) {
	plantPrice, err := s.GetPlantPrice(ctx, date)
	if err != nil {
		return nil, err
	}

	category, err := s.marginRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Margin category")
	}
	if !category.Active {
		return nil, apperror.ErrInactiveMarginCategory
	}

	unit, err := pricing.UnitPricePerKg(plantPrice.Price118Kg, category.MarginPerKg)
	if err != nil {
		return nil, err
	}
	cylinderPrice, err := pricing.CylinderPrice(unit, cylinderType.NominalKg())
	if err != nil {
		return nil, err
	}
	price := pricing.RoundBill(cylinderPrice)

	return &Quote{
		Date:           plantPrice.Date,
		CylinderType:   cylinderType,
		PlantPrice:     plantPrice.Price118Kg,
		MarginPerKg:    category.MarginPerKg,
		UnitPricePerKg: unit,
		CylinderPrice:  price,
	}, nil
}

// CreateMarginCategory creates a margin category.
func (s *PricingService) CreateMarginCategory(ctx context.Context, name string, marginPerKg decimal.Decimal) (*entity.MarginCategory, error) {
	if marginPerKg.IsNegative() {
		return nil, apperror.ErrInvalidPricingInput
	}
	existing, err := s.marginRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Margin category already exists")
	}

	category := &entity.MarginCategory{Name: name, MarginPerKg: marginPerKg, Active: true}
	if err := s.marginRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateMarginCategoryInput represents margin category updates
type UpdateMarginCategoryInput struct {
	Name        *string
	MarginPerKg *decimal.Decimal
	Active      *bool
}

// UpdateMarginCategory updates a margin category. Price changes affect
// future quotes only; posted line items keep their frozen prices.
func (s *PricingService) UpdateMarginCategory(ctx context.Context, id uuid.UUID, input *UpdateMarginCategoryInput) (*entity.MarginCategory, error) {
	category, err := s.marginRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Margin category")
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.MarginPerKg != nil {
		if input.MarginPerKg.IsNegative() {
			return nil, apperror.ErrInvalidPricingInput
		}
		category.MarginPerKg = *input.MarginPerKg
	}
	if input.Active != nil {
		category.Active = *input.Active
	}

	if err := s.marginRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListMarginCategories lists margin categories.
func (s *PricingService) ListMarginCategories(ctx context.Context, activeOnly bool) ([]entity.MarginCategory, error) {
	return s.marginRepo.List(ctx, activeOnly)
}

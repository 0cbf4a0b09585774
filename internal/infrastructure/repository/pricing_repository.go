package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	domainRepo "github.com/amintahir16/lpg-gas-app-sub001/internal/domain/repository"
)

type plantPriceRepository struct {
	db *gorm.DB
}

// NewPlantPriceRepository creates a new plant price repository
func NewPlantPriceRepository(db *gorm.DB) domainRepo.PlantPriceRepository {
	return &plantPriceRepository{db: db}
}

func (r *plantPriceRepository) UpsertByDate(ctx context.Context, price *entity.PlantPrice) error {
	return translateError(dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"price_118_kg", "updated_at"}),
		}).
		Create(price).Error)
}

func (r *plantPriceRepository) GetByDate(ctx context.Context, date time.Time) (*entity.PlantPrice, error) {
	var price entity.PlantPrice
	err := dbFromContext(ctx, r.db).First(&price, "date = ?", date.Format("2006-01-02")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &price, err
}

func (r *plantPriceRepository) GetLatest(ctx context.Context, onOrBefore time.Time) (*entity.PlantPrice, error) {
	var price entity.PlantPrice
	err := dbFromContext(ctx, r.db).
		Where("date <= ?", onOrBefore.Format("2006-01-02")).
		Order("date DESC").
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &price, err
}

func (r *plantPriceRepository) ListRange(ctx context.Context, from, to time.Time) ([]entity.PlantPrice, error) {
	var prices []entity.PlantPrice
	err := dbFromContext(ctx, r.db).
		Where("date >= ? AND date <= ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC").
		Find(&prices).Error
	return prices, err
}

type marginCategoryRepository struct {
	db *gorm.DB
}

// NewMarginCategoryRepository creates a new margin category repository
func NewMarginCategoryRepository(db *gorm.DB) domainRepo.MarginCategoryRepository {
	return &marginCategoryRepository{db: db}
}

func (r *marginCategoryRepository) Create(ctx context.Context, category *entity.MarginCategory) error {
	return translateError(dbFromContext(ctx, r.db).Create(category).Error)
}

func (r *marginCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MarginCategory, error) {
	var category entity.MarginCategory
	err := dbFromContext(ctx, r.db).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *marginCategoryRepository) GetByName(ctx context.Context, name string) (*entity.MarginCategory, error) {
	var category entity.MarginCategory
	err := dbFromContext(ctx, r.db).First(&category, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *marginCategoryRepository) Update(ctx context.Context, category *entity.MarginCategory) error {
	return translateError(dbFromContext(ctx, r.db).Save(category).Error)
}

func (r *marginCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Delete(&entity.MarginCategory{}, "id = ?", id).Error
}

func (r *marginCategoryRepository) List(ctx context.Context, activeOnly bool) ([]entity.MarginCategory, error) {
	var categories []entity.MarginCategory
	query := dbFromContext(ctx, r.db).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&categories).Error
	return categories, err
}

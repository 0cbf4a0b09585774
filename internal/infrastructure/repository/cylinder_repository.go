package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	domainRepo "github.com/amintahir16/lpg-gas-app-sub001/internal/domain/repository"
)

type cylinderRepository struct {
	db *gorm.DB
}

// NewCylinderRepository creates a new cylinder repository
func NewCylinderRepository(db *gorm.DB) domainRepo.CylinderRepository {
	return &cylinderRepository{db: db}
}

func (r *cylinderRepository) Create(ctx context.Context, cylinder *entity.Cylinder) error {
	return translateError(dbFromContext(ctx, r.db).Create(cylinder).Error)
}

func (r *cylinderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cylinder, error) {
	var cylinder entity.Cylinder
	err := dbFromContext(ctx, r.db).First(&cylinder, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cylinder, err
}

func (r *cylinderRepository) GetByCode(ctx context.Context, code string) (*entity.Cylinder, error) {
	var cylinder entity.Cylinder
	err := dbFromContext(ctx, r.db).First(&cylinder, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cylinder, err
}

func (r *cylinderRepository) Update(ctx context.Context, cylinder *entity.Cylinder) error {
	return translateError(dbFromContext(ctx, r.db).Save(cylinder).Error)
}

func (r *cylinderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Cylinder{}, "id = ?", id).Error
}

func (r *cylinderRepository) List(ctx context.Context, params *domainRepo.CylinderFilterParams) ([]entity.Cylinder, int64, error) {
	var cylinders []entity.Cylinder
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Cylinder{})
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CylinderType != nil {
		query = query.Where("cylinder_type = ?", *params.CylinderType)
	}
	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}
	if params.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *params.VehicleID)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.Search != "" {
		query = query.Where("code ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("code ASC").
		Find(&cylinders).Error

	return cylinders, total, err
}

func (r *cylinderRepository) CountByStatus(ctx context.Context) (map[enum.CylinderStatus]int64, error) {
	var rows []struct {
		Status enum.CylinderStatus
		Count  int64
	}
	err := dbFromContext(ctx, r.db).Model(&entity.Cylinder{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.CylinderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) domainRepo.StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	return translateError(dbFromContext(ctx, r.db).Create(store).Error)
}

func (r *storeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var store entity.Store
	err := dbFromContext(ctx, r.db).First(&store, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &store, err
}

func (r *storeRepository) List(ctx context.Context) ([]entity.Store, error) {
	var stores []entity.Store
	err := dbFromContext(ctx, r.db).Order("name ASC").Find(&stores).Error
	return stores, err
}

func (r *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	return translateError(dbFromContext(ctx, r.db).Save(store).Error)
}

func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Store{}, "id = ?", id).Error
}

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) domainRepo.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return translateError(dbFromContext(ctx, r.db).Create(vehicle).Error)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := dbFromContext(ctx, r.db).First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *vehicleRepository) List(ctx context.Context) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	err := dbFromContext(ctx, r.db).Order("registration ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	return translateError(dbFromContext(ctx, r.db).Save(vehicle).Error)
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Vehicle{}, "id = ?", id).Error
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/pagination"
)

// CylinderRepository defines the interface for cylinder asset data operations
type CylinderRepository interface {
	Create(ctx context.Context, cylinder *entity.Cylinder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cylinder, error)
	GetByCode(ctx context.Context, code string) (*entity.Cylinder, error)
	Update(ctx context.Context, cylinder *entity.Cylinder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CylinderFilterParams) ([]entity.Cylinder, int64, error)
	// CountByStatus returns per-status cylinder counts for stock reporting.
	CountByStatus(ctx context.Context) (map[enum.CylinderStatus]int64, error)
}

// CylinderFilterParams contains filtering parameters for cylinder queries
type CylinderFilterParams struct {
	Pagination   *pagination.PaginationParams
	Status       *enum.CylinderStatus
	CylinderType *enum.CylinderType
	StoreID      *uuid.UUID
	VehicleID    *uuid.UUID
	CustomerID   *uuid.UUID
	Search       string
}

// StoreRepository defines the interface for store location data operations
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	List(ctx context.Context) ([]entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VehicleRepository defines the interface for delivery vehicle data operations
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	List(ctx context.Context) ([]entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

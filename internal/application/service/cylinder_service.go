package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/cylinder"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/repository"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/apperror"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/pagination"
)

// CylinderService tracks physical cylinders through the lifecycle table.
type CylinderService struct {
	cylinderRepo repository.CylinderRepository
	storeRepo    repository.StoreRepository
	vehicleRepo  repository.VehicleRepository
	txManager    repository.TxManager
}

// NewCylinderService creates a new cylinder service
func NewCylinderService(
	cylinderRepo repository.CylinderRepository,
	storeRepo repository.StoreRepository,
	vehicleRepo repository.VehicleRepository,
	txManager repository.TxManager,
) *CylinderService {
	return &CylinderService{
		cylinderRepo: cylinderRepo,
		storeRepo:    storeRepo,
		vehicleRepo:  vehicleRepo,
		txManager:    txManager,
	}
}

// RegisterCylinderInput represents a new cylinder entering the fleet
type RegisterCylinderInput struct {
	Code         string
	CylinderType enum.CylinderType
	StoreID      uuid.UUID
}

// RegisterCylinder adds a cylinder to the fleet, FULL at a store.
func (s *CylinderService) RegisterCylinder(ctx context.Context, input *RegisterCylinderInput) (*entity.Cylinder, error) {
	if !input.CylinderType.Valid() {
		return nil, apperror.NewBadRequestError("Unknown cylinder type")
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	existing, err := s.cylinderRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Cylinder code already registered")
	}

	c := &entity.Cylinder{
		Code:         input.Code,
		CylinderType: input.CylinderType,
		Status:       enum.CylinderFull,
		StoreID:      &input.StoreID,
	}
	if err := s.cylinderRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// TransitionInput represents a lifecycle event for one cylinder
type TransitionInput struct {
	Event cylinder.Event
}

// Transition applies a lifecycle event to a cylinder. The target location
// is validated against the stores and vehicles tables before the move.
func (s *CylinderService) Transition(ctx context.Context, id uuid.UUID, input *TransitionInput) (*entity.Cylinder, error) {
	if err := s.validateTarget(ctx, input.Event.Target); err != nil {
		return nil, err
	}

	var updated *entity.Cylinder
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.cylinderRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return apperror.NewNotFoundError("Cylinder")
		}

		next, err := cylinder.ApplyTransition(*c, input.Event)
		if err != nil {
			return err
		}
		next.ID = c.ID
		next.CreatedAt = c.CreatedAt

		if err := s.cylinderRepo.Update(ctx, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *CylinderService) validateTarget(ctx context.Context, target cylinder.Location) error {
	if target.StoreID != nil {
		store, err := s.storeRepo.GetByID(ctx, *target.StoreID)
		if err != nil {
			return err
		}
		if store == nil {
			return apperror.NewNotFoundError("Store")
		}
	}
	if target.VehicleID != nil {
		vehicle, err := s.vehicleRepo.GetByID(ctx, *target.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return apperror.NewNotFoundError("Vehicle")
		}
	}
	return nil
}

// GetCylinder retrieves a cylinder by ID
func (s *CylinderService) GetCylinder(ctx context.Context, id uuid.UUID) (*entity.Cylinder, error) {
	c, err := s.cylinderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NewNotFoundError("Cylinder")
	}
	return c, nil
}

// ListCylinders lists cylinders with filtering
func (s *CylinderService) ListCylinders(ctx context.Context, params *repository.CylinderFilterParams) (*pagination.PaginatedResult[entity.Cylinder], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	cylinders, total, err := s.cylinderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(cylinders, pag), nil
}

// StockSummary reports fleet counts per lifecycle status.
func (s *CylinderService) StockSummary(ctx context.Context) (map[string]int64, error) {
	counts, err := s.cylinderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(counts))
	for status, n := range counts {
		out[status.String()] = n
	}
	return out, nil
}

// CreateStore creates a store location.
func (s *CylinderService) CreateStore(ctx context.Context, store *entity.Store) error {
	return s.storeRepo.Create(ctx, store)
}

// ListStores lists store locations.
func (s *CylinderService) ListStores(ctx context.Context) ([]entity.Store, error) {
	return s.storeRepo.List(ctx)
}

// CreateVehicle creates a delivery vehicle.
func (s *CylinderService) CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) error {
	return s.vehicleRepo.Create(ctx, vehicle)
}

// ListVehicles lists delivery vehicles.
func (s *CylinderService) ListVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

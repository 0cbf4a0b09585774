package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/pagination"
)

// CustomerRepository defines the interface for B2B customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// GetByIDForUpdate loads the customer row under a write lock. Callers
	// must hold an open transaction on the context.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
}

// B2CCustomerRepository defines the interface for walk-in customer data operations
type B2CCustomerRepository interface {
	Create(ctx context.Context, customer *entity.B2CCustomer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.B2CCustomer, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.B2CCustomer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.B2CCustomer, error)
	Update(ctx context.Context, customer *entity.B2CCustomer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.B2CCustomer, int64, error)
}

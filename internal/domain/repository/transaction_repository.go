package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/pagination"
)

// TransactionRepository defines the interface for B2B ledger transaction operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	GetByBillNumber(ctx context.Context, billNumber string) (*entity.Transaction, error)
	ExistsBillNumber(ctx context.Context, billNumber string) (bool, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	// ListByCustomer returns every transaction of a customer, voided
	// included, ordered by date then time. Used for balance replay.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Transaction, error)
}

// TransactionFilterParams contains filtering parameters for transaction queries
type TransactionFilterParams struct {
	Pagination    *pagination.PaginationParams
	CustomerID    *uuid.UUID
	Type          *enum.TransactionType
	StartDate     *time.Time
	EndDate       *time.Time
	IncludeVoided bool
}

// B2CTransactionRepository defines the interface for walk-in ledger transaction operations
type B2CTransactionRepository interface {
	Create(ctx context.Context, tx *entity.B2CTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.B2CTransaction, error)
	GetByBillNumber(ctx context.Context, billNumber string) (*entity.B2CTransaction, error)
	ExistsBillNumber(ctx context.Context, billNumber string) (bool, error)
	Update(ctx context.Context, tx *entity.B2CTransaction) error
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.B2CTransaction, int64, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.B2CTransaction, error)
}

// HoldingRepository defines the interface for security-deposit cylinder holdings
type HoldingRepository interface {
	Create(ctx context.Context, holding *entity.CylinderHolding) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CylinderHolding, error)
	Update(ctx context.Context, holding *entity.CylinderHolding) error
	// ListOpenByCustomerAndType returns unreturned holdings oldest issue
	// date first, so returns close deposits in issue order.
	ListOpenByCustomerAndType(ctx context.Context, customerID uuid.UUID, cylinderType enum.CylinderType) ([]entity.CylinderHolding, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CylinderHolding, error)
}

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

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new B2B transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	// Line items are saved through the association in one insert batch.
	return translateError(dbFromContext(ctx, r.db).Create(tx).Error)
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := dbFromContext(ctx, r.db).Preload("Items").First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tx, err
}

func (r *transactionRepository) GetByBillNumber(ctx context.Context, billNumber string) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := dbFromContext(ctx, r.db).Preload("Items").First(&tx, "bill_number = ?", billNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tx, err
}

func (r *transactionRepository) ExistsBillNumber(ctx context.Context, billNumber string) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&entity.Transaction{}).
		Where("bill_number = ?", billNumber).Count(&count).Error
	return count > 0, err
}

func (r *transactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	return translateError(dbFromContext(ctx, r.db).Save(tx).Error)
}

func (r *transactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var txs []entity.Transaction
	var total int64

	query := applyTransactionFilters(dbFromContext(ctx, r.db).Model(&entity.Transaction{}), params)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Items").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, time DESC").
		Find(&txs).Error

	return txs, total, err
}

func (r *transactionRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	err := dbFromContext(ctx, r.db).Preload("Items").
		Where("customer_id = ?", customerID).
		Order("date ASC, time ASC").
		Find(&txs).Error
	return txs, err
}

func applyTransactionFilters(query *gorm.DB, params *domainRepo.TransactionFilterParams) *gorm.DB {
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}
	if !params.IncludeVoided {
		query = query.Where("voided = ?", false)
	}
	return query
}

type b2cTransactionRepository struct {
	db *gorm.DB
}

// NewB2CTransactionRepository creates a new walk-in transaction repository
func NewB2CTransactionRepository(db *gorm.DB) domainRepo.B2CTransactionRepository {
	return &b2cTransactionRepository{db: db}
}

func (r *b2cTransactionRepository) Create(ctx context.Context, tx *entity.B2CTransaction) error {
	return translateError(dbFromContext(ctx, r.db).Create(tx).Error)
}

func (r *b2cTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.B2CTransaction, error) {
	var tx entity.B2CTransaction
	err := dbFromContext(ctx, r.db).Preload("Items").First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tx, err
}

func (r *b2cTransactionRepository) GetByBillNumber(ctx context.Context, billNumber string) (*entity.B2CTransaction, error) {
	var tx entity.B2CTransaction
	err := dbFromContext(ctx, r.db).Preload("Items").First(&tx, "bill_number = ?", billNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tx, err
}

func (r *b2cTransactionRepository) ExistsBillNumber(ctx context.Context, billNumber string) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&entity.B2CTransaction{}).
		Where("bill_number = ?", billNumber).Count(&count).Error
	return count > 0, err
}

func (r *b2cTransactionRepository) Update(ctx context.Context, tx *entity.B2CTransaction) error {
	return translateError(dbFromContext(ctx, r.db).Save(tx).Error)
}

func (r *b2cTransactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.B2CTransaction, int64, error) {
	var txs []entity.B2CTransaction
	var total int64

	query := applyTransactionFilters(dbFromContext(ctx, r.db).Model(&entity.B2CTransaction{}), params)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Items").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, time DESC").
		Find(&txs).Error

	return txs, total, err
}

func (r *b2cTransactionRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.B2CTransaction, error) {
	var txs []entity.B2CTransaction
	err := dbFromContext(ctx, r.db).Preload("Items").
		Where("customer_id = ?", customerID).
		Order("date ASC, time ASC").
		Find(&txs).Error
	return txs, err
}

type holdingRepository struct {
	db *gorm.DB
}

// NewHoldingRepository creates a new security holding repository
func NewHoldingRepository(db *gorm.DB) domainRepo.HoldingRepository {
	return &holdingRepository{db: db}
}

func (r *holdingRepository) Create(ctx context.Context, holding *entity.CylinderHolding) error {
	return translateError(dbFromContext(ctx, r.db).Create(holding).Error)
}

func (r *holdingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CylinderHolding, error) {
	var holding entity.CylinderHolding
	err := dbFromContext(ctx, r.db).First(&holding, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &holding, err
}

func (r *holdingRepository) Update(ctx context.Context, holding *entity.CylinderHolding) error {
	return translateError(dbFromContext(ctx, r.db).Save(holding).Error)
}

func (r *holdingRepository) ListOpenByCustomerAndType(ctx context.Context, customerID uuid.UUID, cylinderType enum.CylinderType) ([]entity.CylinderHolding, error) {
	var holdings []entity.CylinderHolding
	err := dbFromContext(ctx, r.db).
		Where("customer_id = ? AND cylinder_type = ? AND is_returned = ?", customerID, cylinderType, false).
		Order("issue_date ASC, created_at ASC").
		Find(&holdings).Error
	return holdings, err
}

func (r *holdingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CylinderHolding, error) {
	var holdings []entity.CylinderHolding
	err := dbFromContext(ctx, r.db).
		Where("customer_id = ?", customerID).
		Order("issue_date ASC").
		Find(&holdings).Error
	return holdings, err
}

package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	domainRepo "github.com/amintahir16/lpg-gas-app-sub001/internal/domain/repository"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/pagination"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new B2B customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return translateError(dbFromContext(ctx, r.db).Create(customer).Error)
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := dbFromContext(ctx, r.db).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := dbFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, translateError(err)
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	var customer entity.Customer
	err := dbFromContext(ctx, r.db).First(&customer, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return translateError(dbFromContext(ctx, r.db).Save(customer).Error)
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Customer{})
	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR address ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&customers).Error

	return customers, total, err
}

type b2cCustomerRepository struct {
	db *gorm.DB
}

// NewB2CCustomerRepository creates a new walk-in customer repository
func NewB2CCustomerRepository(db *gorm.DB) domainRepo.B2CCustomerRepository {
	return &b2cCustomerRepository{db: db}
}

func (r *b2cCustomerRepository) Create(ctx context.Context, customer *entity.B2CCustomer) error {
	return translateError(dbFromContext(ctx, r.db).Create(customer).Error)
}

func (r *b2cCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.B2CCustomer, error) {
	var customer entity.B2CCustomer
	err := dbFromContext(ctx, r.db).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *b2cCustomerRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.B2CCustomer, error) {
	var customer entity.B2CCustomer
	err := dbFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, translateError(err)
}

func (r *b2cCustomerRepository) GetByPhone(ctx context.Context, phone string) (*entity.B2CCustomer, error) {
	var customer entity.B2CCustomer
	err := dbFromContext(ctx, r.db).First(&customer, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *b2cCustomerRepository) Update(ctx context.Context, customer *entity.B2CCustomer) error {
	return translateError(dbFromContext(ctx, r.db).Save(customer).Error)
}

func (r *b2cCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Delete(&entity.B2CCustomer{}, "id = ?", id).Error
}

func (r *b2cCustomerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.B2CCustomer, int64, error) {
	var customers []entity.B2CCustomer
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.B2CCustomer{})
	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&customers).Error

	return customers, total, err
}

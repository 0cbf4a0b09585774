package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/repository"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/apperror"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/pagination"
)

// CustomerService manages B2B and walk-in customer records. Ledger
// aggregates on these rows are owned by the ledger services and never
// touched here.
type CustomerService struct {
	customerRepo    repository.CustomerRepository
	b2cCustomerRepo repository.B2CCustomerRepository
	marginRepo      repository.MarginCategoryRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	b2cCustomerRepo repository.B2CCustomerRepository,
	marginRepo repository.MarginCategoryRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo:    customerRepo,
		b2cCustomerRepo: b2cCustomerRepo,
		marginRepo:      marginRepo,
	}
}

// CreateCustomerInput represents the B2B customer to create
type CreateCustomerInput struct {
	Name             string
	ContactPerson    *string
	Phone            *string
	Email            *string
	Address          *string
	CreditLimit      decimal.Decimal
	PaymentTermsDays int
	MarginCategoryID *uuid.UUID
}

// CreateCustomer creates a B2B customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.CreditLimit.IsNegative() {
		return nil, apperror.NewBadRequestError("Credit limit cannot be negative")
	}
	if err := s.checkMarginCategory(ctx, input.MarginCategoryID); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		Name:             input.Name,
		ContactPerson:    input.ContactPerson,
		Phone:            input.Phone,
		Email:            input.Email,
		Address:          input.Address,
		CreditLimit:      input.CreditLimit,
		PaymentTermsDays: input.PaymentTermsDays,
		MarginCategoryID: input.MarginCategoryID,
	}
	if customer.PaymentTermsDays <= 0 {
		customer.PaymentTermsDays = 30
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) checkMarginCategory(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	category, err := s.marginRepo.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Margin category")
	}
	if !category.Active {
		return apperror.ErrInactiveMarginCategory
	}
	return nil
}

// GetCustomer retrieves a B2B customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomerInput represents B2B customer updates
type UpdateCustomerInput struct {
	Name             *string
	ContactPerson    *string
	Phone            *string
	Email            *string
	Address          *string
	CreditLimit      *decimal.Decimal
	PaymentTermsDays *int
	MarginCategoryID *uuid.UUID
}

// UpdateCustomer updates a B2B customer's profile fields.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.ContactPerson != nil {
		customer.ContactPerson = input.ContactPerson
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.CreditLimit != nil {
		if input.CreditLimit.IsNegative() {
			return nil, apperror.NewBadRequestError("Credit limit cannot be negative")
		}
		customer.CreditLimit = *input.CreditLimit
	}
	if input.PaymentTermsDays != nil && *input.PaymentTermsDays > 0 {
		customer.PaymentTermsDays = *input.PaymentTermsDays
	}
	if input.MarginCategoryID != nil {
		if err := s.checkMarginCategory(ctx, input.MarginCategoryID); err != nil {
			return nil, err
		}
		customer.MarginCategoryID = input.MarginCategoryID
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer soft-deletes a B2B customer. The ledger keeps their
// transaction history.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers lists B2B customers with search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// CreateB2CCustomerInput represents the walk-in customer to create
type CreateB2CCustomerInput struct {
	Name    string
	Phone   *string
	Address *string
}

// CreateB2CCustomer creates a walk-in customer.
func (s *CustomerService) CreateB2CCustomer(ctx context.Context, input *CreateB2CCustomerInput) (*entity.B2CCustomer, error) {
	customer := &entity.B2CCustomer{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.b2cCustomerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetB2CCustomer retrieves a walk-in customer by ID
func (s *CustomerService) GetB2CCustomer(ctx context.Context, id uuid.UUID) (*entity.B2CCustomer, error) {
	customer, err := s.b2cCustomerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListB2CCustomers lists walk-in customers with search
func (s *CustomerService) ListB2CCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.B2CCustomer], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	customers, total, err := s.b2cCustomerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

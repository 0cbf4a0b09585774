package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/application/service"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing B2B customers
func (h *CustomerHandler) List(c *gin.Context) {
	params := paginationFromQuery(c)
	search := c.Query("search")

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a B2B customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		Name             string           `json:"name" binding:"required"`
		ContactPerson    *string          `json:"contact_person"`
		Phone            *string          `json:"phone"`
		Email            *string          `json:"email"`
		Address          *string          `json:"address"`
		CreditLimit      *decimal.Decimal `json:"credit_limit"`
		PaymentTermsDays int              `json:"payment_terms_days"`
		MarginCategoryID *uuid.UUID       `json:"margin_category_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	creditLimit := decimal.Zero
	if req.CreditLimit != nil {
		creditLimit = *req.CreditLimit
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:             req.Name,
		ContactPerson:    req.ContactPerson,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		CreditLimit:      creditLimit,
		PaymentTermsDays: req.PaymentTermsDays,
		MarginCategoryID: req.MarginCategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles fetching a single B2B customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a B2B customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Name             *string          `json:"name"`
		ContactPerson    *string          `json:"contact_person"`
		Phone            *string          `json:"phone"`
		Email            *string          `json:"email"`
		Address          *string          `json:"address"`
		CreditLimit      *decimal.Decimal `json:"credit_limit"`
		PaymentTermsDays *int             `json:"payment_terms_days"`
		MarginCategoryID *uuid.UUID       `json:"margin_category_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &service.UpdateCustomerInput{
		Name:             req.Name,
		ContactPerson:    req.ContactPerson,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		CreditLimit:      req.CreditLimit,
		PaymentTermsDays: req.PaymentTermsDays,
		MarginCategoryID: req.MarginCategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a B2B customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}

// ListB2C handles listing walk-in customers
func (h *CustomerHandler) ListB2C(c *gin.Context) {
	params := paginationFromQuery(c)
	search := c.Query("search")

	result, err := h.customerService.ListB2CCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Walk-in customers retrieved successfully", result)
}

// CreateB2C handles creating a walk-in customer
func (h *CustomerHandler) CreateB2C(c *gin.Context) {
	var req struct {
		Name    string  `json:"name" binding:"required"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateB2CCustomer(c.Request.Context(), &service.CreateB2CCustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Walk-in customer created successfully", customer)
}

// GetB2C handles fetching a single walk-in customer
func (h *CustomerHandler) GetB2C(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetB2CCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Walk-in customer retrieved successfully", customer)
}

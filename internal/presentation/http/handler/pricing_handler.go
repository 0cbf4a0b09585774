package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/application/service"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/presentation/http/dto/response"
)

// PricingHandler handles plant price and margin category HTTP requests
type PricingHandler struct {
	pricingService *service.PricingService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingService *service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// SetPlantPrice handles recording the plant price for a date
func (h *PricingHandler) SetPlantPrice(c *gin.Context) {
	var req struct {
		Date       string          `json:"date" binding:"required"`
		Price118Kg decimal.Decimal `json:"price_118_kg" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	price, err := h.pricingService.SetPlantPrice(c.Request.Context(), date, req.Price118Kg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Plant price recorded successfully", price)
}

// GetPlantPrice handles fetching the effective plant price for a date
func (h *PricingHandler) GetPlantPrice(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	price, err := h.pricingService.GetPlantPrice(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Plant price retrieved successfully", price)
}

// ListPlantPrices handles listing plant prices over a date range
func (h *PricingHandler) ListPlantPrices(c *gin.Context) {
	from, ok := dateFromQuery(c, "from")
	if !ok {
		response.BadRequest(c, "Invalid from, expected YYYY-MM-DD")
		return
	}
	to, ok := dateFromQuery(c, "to")
	if !ok {
		response.BadRequest(c, "Invalid to, expected YYYY-MM-DD")
		return
	}

	// Default to the trailing 30 days.
	end := time.Now()
	start := end.AddDate(0, 0, -30)
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	prices, err := h.pricingService.ListPlantPrices(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Plant prices retrieved successfully", prices)
}

// Quote handles quoting a cylinder price for a margin category on a date
func (h *PricingHandler) Quote(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Query("margin_category_id"))
	if err != nil {
		response.BadRequest(c, "Invalid margin category ID")
		return
	}

	cylinderType, ok := enum.ParseCylinderType(c.Query("cylinder_type"))
	if !ok {
		response.BadRequest(c, "Unknown cylinder type: "+c.Query("cylinder_type"))
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	quote, err := h.pricingService.QuoteCylinder(c.Request.Context(), date, categoryID, cylinderType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote calculated successfully", quote)
}

// CreateMarginCategory handles creating a margin category
func (h *PricingHandler) CreateMarginCategory(c *gin.Context) {
	var req struct {
		Name        string          `json:"name" binding:"required"`
		MarginPerKg decimal.Decimal `json:"margin_per_kg" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.pricingService.CreateMarginCategory(c.Request.Context(), req.Name, req.MarginPerKg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Margin category created successfully", category)
}

// UpdateMarginCategory handles updating a margin category
func (h *PricingHandler) UpdateMarginCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid margin category ID")
		return
	}

	var req struct {
		Name        *string          `json:"name"`
		MarginPerKg *decimal.Decimal `json:"margin_per_kg"`
		Active      *bool            `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.pricingService.UpdateMarginCategory(c.Request.Context(), id, &service.UpdateMarginCategoryInput{
		Name:        req.Name,
		MarginPerKg: req.MarginPerKg,
		Active:      req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Margin category updated successfully", category)
}

// ListMarginCategories handles listing margin categories
func (h *PricingHandler) ListMarginCategories(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	categories, err := h.pricingService.ListMarginCategories(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Margin categories retrieved successfully", categories)
}

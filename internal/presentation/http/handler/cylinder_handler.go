package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/application/service"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/cylinder"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/repository"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/presentation/http/dto/response"
)

// CylinderHandler handles cylinder fleet HTTP requests
type CylinderHandler struct {
	cylinderService *service.CylinderService
}

// NewCylinderHandler creates a new cylinder handler
func NewCylinderHandler(cylinderService *service.CylinderService) *CylinderHandler {
	return &CylinderHandler{cylinderService: cylinderService}
}

// Register handles adding a cylinder to the fleet
func (h *CylinderHandler) Register(c *gin.Context) {
	var req struct {
		Code         string    `json:"code" binding:"required"`
		CylinderType string    `json:"cylinder_type" binding:"required"`
		StoreID      uuid.UUID `json:"store_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cylinderType, ok := enum.ParseCylinderType(req.CylinderType)
	if !ok {
		response.BadRequest(c, "Unknown cylinder type: "+req.CylinderType)
		return
	}

	cyl, err := h.cylinderService.RegisterCylinder(c.Request.Context(), &service.RegisterCylinderInput{
		Code:         req.Code,
		CylinderType: cylinderType,
		StoreID:      req.StoreID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cylinder registered successfully", cyl)
}

// Transition handles applying a lifecycle event to a cylinder
func (h *CylinderHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cylinder ID")
		return
	}

	var req struct {
		Event           string           `json:"event" binding:"required"`
		Condition       *string          `json:"condition"`
		RemainingKg     *decimal.Decimal `json:"remaining_kg"`
		ResultingStatus *string          `json:"resulting_status"`
		StoreID         *uuid.UUID       `json:"store_id"`
		VehicleID       *uuid.UUID       `json:"vehicle_id"`
		CustomerID      *uuid.UUID       `json:"customer_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	kind, ok := cylinder.ParseEventKind(req.Event)
	if !ok {
		response.BadRequest(c, "Unknown event: "+req.Event)
		return
	}

	event := cylinder.Event{
		Kind:        kind,
		RemainingKg: req.RemainingKg,
		Target: cylinder.Location{
			StoreID:    req.StoreID,
			VehicleID:  req.VehicleID,
			CustomerID: req.CustomerID,
		},
	}

	if req.Condition != nil {
		cond, ok := enum.ParseReturnedCondition(*req.Condition)
		if !ok {
			response.BadRequest(c, "Unknown condition: "+*req.Condition)
			return
		}
		event.Condition = cond
	}

	if req.ResultingStatus != nil {
		status, ok := enum.ParseCylinderStatus(*req.ResultingStatus)
		if !ok {
			response.BadRequest(c, "Unknown status: "+*req.ResultingStatus)
			return
		}
		event.ResultingStatus = status
	}

	cyl, err := h.cylinderService.Transition(c.Request.Context(), id, &service.TransitionInput{Event: event})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cylinder transitioned successfully", cyl)
}

// Get handles fetching a single cylinder
func (h *CylinderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cylinder ID")
		return
	}

	cyl, err := h.cylinderService.GetCylinder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cylinder retrieved successfully", cyl)
}

// List handles listing cylinders with filters
func (h *CylinderHandler) List(c *gin.Context) {
	params := &repository.CylinderFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
	}

	if raw := c.Query("status"); raw != "" {
		status, ok := enum.ParseCylinderStatus(raw)
		if !ok {
			response.BadRequest(c, "Unknown status: "+raw)
			return
		}
		params.Status = &status
	}

	if raw := c.Query("cylinder_type"); raw != "" {
		ct, ok := enum.ParseCylinderType(raw)
		if !ok {
			response.BadRequest(c, "Unknown cylinder type: "+raw)
			return
		}
		params.CylinderType = &ct
	}

	if raw := c.Query("store_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid store ID")
			return
		}
		params.StoreID = &id
	}

	if raw := c.Query("vehicle_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid vehicle ID")
			return
		}
		params.VehicleID = &id
	}

	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &id
	}

	result, err := h.cylinderService.ListCylinders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Cylinders retrieved successfully", result)
}

// StockSummary handles the fleet count-by-status summary
func (h *CylinderHandler) StockSummary(c *gin.Context) {
	summary, err := h.cylinderService.StockSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock summary retrieved successfully", summary)
}

// CreateStore handles creating a store location
func (h *CylinderHandler) CreateStore(c *gin.Context) {
	var req struct {
		Name    string  `json:"name" binding:"required"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	store := &entity.Store{Name: req.Name, Address: req.Address}
	if err := h.cylinderService.CreateStore(c.Request.Context(), store); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Store created successfully", store)
}

// ListStores handles listing store locations
func (h *CylinderHandler) ListStores(c *gin.Context) {
	stores, err := h.cylinderService.ListStores(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stores retrieved successfully", stores)
}

// CreateVehicle handles creating a delivery vehicle
func (h *CylinderHandler) CreateVehicle(c *gin.Context) {
	var req struct {
		Registration string  `json:"registration" binding:"required"`
		DriverName   *string `json:"driver_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vehicle := &entity.Vehicle{Registration: req.Registration, DriverName: req.DriverName}
	if err := h.cylinderService.CreateVehicle(c.Request.Context(), vehicle); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vehicle created successfully", vehicle)
}

// ListVehicles handles listing delivery vehicles
func (h *CylinderHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.cylinderService.ListVehicles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicles retrieved successfully", vehicles)
}

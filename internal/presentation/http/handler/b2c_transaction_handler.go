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

// B2CTransactionHandler handles walk-in ledger HTTP requests
type B2CTransactionHandler struct {
	b2cService *service.B2CService
}

// NewB2CTransactionHandler creates a new walk-in transaction handler
func NewB2CTransactionHandler(b2cService *service.B2CService) *B2CTransactionHandler {
	return &B2CTransactionHandler{b2cService: b2cService}
}

// Post handles appending a walk-in transaction
func (h *B2CTransactionHandler) Post(c *gin.Context) {
	var req struct {
		CustomerID       uuid.UUID       `json:"customer_id" binding:"required"`
		Type             string          `json:"type" binding:"required"`
		BillNumber       string          `json:"bill_number"`
		Date             string          `json:"date" binding:"required"`
		Time             string          `json:"time"`
		TotalAmount      decimal.Decimal `json:"total_amount"`
		PaymentReference *string         `json:"payment_reference"`
		Notes            *string         `json:"notes"`
		Items            []struct {
			ProductName  string          `json:"product_name" binding:"required"`
			Quantity     int             `json:"quantity" binding:"required,gt=0"`
			PricePerItem decimal.Decimal `json:"price_per_item"`
			CylinderType *string         `json:"cylinder_type"`
			IsSecurity   bool            `json:"is_security"`
			IsReturn     bool            `json:"is_return"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	txType, ok := enum.ParseTransactionType(req.Type)
	if !ok {
		response.BadRequest(c, "Unknown transaction type: "+req.Type)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	items := make([]service.B2CLineInput, 0, len(req.Items))
	for _, raw := range req.Items {
		item := service.B2CLineInput{
			ProductName:  raw.ProductName,
			Quantity:     raw.Quantity,
			PricePerItem: raw.PricePerItem,
			IsSecurity:   raw.IsSecurity,
			IsReturn:     raw.IsReturn,
		}
		if raw.CylinderType != nil {
			ct, ok := enum.ParseCylinderType(*raw.CylinderType)
			if !ok {
				response.BadRequest(c, "Unknown cylinder type: "+*raw.CylinderType)
				return
			}
			item.CylinderType = &ct
		}
		items = append(items, item)
	}

	tx, err := h.b2cService.PostTransaction(c.Request.Context(), &service.PostB2CTransactionInput{
		CustomerID:       req.CustomerID,
		Type:             txType,
		BillNumber:       req.BillNumber,
		Date:             date,
		Time:             req.Time,
		TotalAmount:      req.TotalAmount,
		PaymentReference: req.PaymentReference,
		Notes:            req.Notes,
		Items:            items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction posted successfully", tx)
}

// Void handles voiding a posted walk-in transaction
func (h *B2CTransactionHandler) Void(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.b2cService.VoidTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction voided successfully", tx)
}

// Get handles fetching a single walk-in transaction
func (h *B2CTransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.b2cService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", tx)
}

// List handles listing walk-in transactions with filters
func (h *B2CTransactionHandler) List(c *gin.Context) {
	params, ok := transactionFiltersFromQuery(c)
	if !ok {
		return
	}

	result, err := h.b2cService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// ListHoldings handles listing a walk-in customer's cylinder holdings
func (h *B2CTransactionHandler) ListHoldings(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	holdings, err := h.b2cService.ListHoldings(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Holdings retrieved successfully", holdings)
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/application/service"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/repository"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/presentation/http/dto/response"
)

// TransactionHandler handles B2B ledger HTTP requests
type TransactionHandler struct {
	ledgerService *service.LedgerService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledgerService *service.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

type lineItemRequest struct {
	ProductName  string          `json:"product_name" binding:"required"`
	Quantity     int             `json:"quantity" binding:"required,gt=0"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
	CylinderType *string         `json:"cylinder_type"`

	ReturnedCondition *string          `json:"returned_condition"`
	RemainingKg       *decimal.Decimal `json:"remaining_kg"`
	OriginalSoldPrice *decimal.Decimal `json:"original_sold_price"`
}

func (r *lineItemRequest) toInput(c *gin.Context) (*service.LineItemInput, bool) {
	input := &service.LineItemInput{
		ProductName:       r.ProductName,
		Quantity:          r.Quantity,
		PricePerItem:      r.PricePerItem,
		RemainingKg:       r.RemainingKg,
		OriginalSoldPrice: r.OriginalSoldPrice,
	}
	if r.CylinderType != nil {
		ct, ok := enum.ParseCylinderType(*r.CylinderType)
		if !ok {
			response.BadRequest(c, "Unknown cylinder type: "+*r.CylinderType)
			return nil, false
		}
		input.CylinderType = &ct
	}
	if r.ReturnedCondition != nil {
		cond, ok := enum.ParseReturnedCondition(*r.ReturnedCondition)
		if !ok {
			response.BadRequest(c, "Unknown returned condition: "+*r.ReturnedCondition)
			return nil, false
		}
		input.ReturnedCondition = &cond
	}
	return input, true
}

// Post handles appending a transaction to a customer's ledger
func (h *TransactionHandler) Post(c *gin.Context) {
	var req struct {
		CustomerID       uuid.UUID         `json:"customer_id" binding:"required"`
		Type             string            `json:"type" binding:"required"`
		BillNumber       string            `json:"bill_number"`
		Date             string            `json:"date" binding:"required"`
		Time             string            `json:"time"`
		TotalAmount      decimal.Decimal   `json:"total_amount"`
		PaymentReference *string           `json:"payment_reference"`
		Notes            *string           `json:"notes"`
		Items            []lineItemRequest `json:"items"`
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

	items := make([]service.LineItemInput, 0, len(req.Items))
	for i := range req.Items {
		item, ok := req.Items[i].toInput(c)
		if !ok {
			return
		}
		items = append(items, *item)
	}

	tx, err := h.ledgerService.PostTransaction(c.Request.Context(), &service.PostTransactionInput{
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

// Void handles voiding a posted transaction
func (h *TransactionHandler) Void(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.ledgerService.VoidTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction voided successfully", tx)
}

// Get handles fetching a single transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.ledgerService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", tx)
}

// List handles listing transactions with filters
func (h *TransactionHandler) List(c *gin.Context) {
	params, ok := transactionFiltersFromQuery(c)
	if !ok {
		return
	}

	result, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// transactionFiltersFromQuery builds filter params shared by the B2B and
// walk-in transaction listings. It writes the error response itself.
func transactionFiltersFromQuery(c *gin.Context) (*repository.TransactionFilterParams, bool) {
	params := &repository.TransactionFilterParams{
		Pagination:    paginationFromQuery(c),
		IncludeVoided: c.Query("include_voided") == "true",
	}

	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return nil, false
		}
		params.CustomerID = &id
	}

	if raw := c.Query("type"); raw != "" {
		txType, ok := enum.ParseTransactionType(raw)
		if !ok {
			response.BadRequest(c, "Unknown transaction type: "+raw)
			return nil, false
		}
		params.Type = &txType
	}

	start, ok := dateFromQuery(c, "start_date")
	if !ok {
		response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
		return nil, false
	}
	params.StartDate = start

	end, ok := dateFromQuery(c, "end_date")
	if !ok {
		response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
		return nil, false
	}
	params.EndDate = end

	return params, true
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/application/service"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/presentation/http/dto/response"
)

// ReconciliationHandler handles ledger statement and audit HTTP requests
type ReconciliationHandler struct {
	reconciliationService *service.ReconciliationService
}

// NewReconciliationHandler creates a new reconciliation handler
func NewReconciliationHandler(reconciliationService *service.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationService: reconciliationService}
}

// CustomerStatement handles replaying a B2B customer's ledger
func (h *ReconciliationHandler) CustomerStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	statement, err := h.reconciliationService.CustomerStatement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Statement generated successfully", statement)
}

// B2CCustomerStatement handles replaying a walk-in customer's ledger
func (h *ReconciliationHandler) B2CCustomerStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	statement, err := h.reconciliationService.B2CCustomerStatement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Statement generated successfully", statement)
}

// AuditBalances handles the full-ledger drift audit. Admin only.
func (h *ReconciliationHandler) AuditBalances(c *gin.Context) {
	entries, err := h.reconciliationService.AuditBalances(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Audit completed successfully", gin.H{
		"drifted": entries,
		"count":   len(entries),
	})
}

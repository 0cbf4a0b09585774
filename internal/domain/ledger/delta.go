package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
)

// Buyback and security-deposit policy rates. Frozen onto line items at
// posting time; changing them never rewrites history.
var (
	PartialBuybackRate    = decimal.NewFromFloat(0.60)
	FullBuybackRate       = decimal.NewFromInt(1)
	SecurityDeductionRate = decimal.NewFromFloat(0.25)
)

// Delta returns the signed effect of a transaction on the customer's
// ledger balance. This switch is the single source of truth for balance
// arithmetic; voiding applies its exact negation.
func Delta(t enum.TransactionType, totalAmount decimal.Decimal) decimal.Decimal {
	switch t {
	case enum.TransactionSale:
		return totalAmount
	case enum.TransactionPayment,
		enum.TransactionBuyback,
		enum.TransactionAdjustment,
		enum.TransactionCreditNote:
		return totalAmount.Neg()
	case enum.TransactionReturnEmpty:
		return decimal.Zero
	}
	// Unreachable for the closed TransactionType set.
	return decimal.Zero
}

// DueDelta returns the signed per-size cylinder-due changes implied by a
// transaction's line items: sales put cylinders in the field, buybacks and
// empty returns bring them back. Lines without a cylinder type (services,
// fittings) carry no due effect.
func DueDelta(t enum.TransactionType, items []entity.LineItem) map[enum.CylinderType]int {
	deltas := make(map[enum.CylinderType]int)
	for _, item := range items {
		if item.CylinderType == nil {
			continue
		}
		switch t {
		case enum.TransactionSale:
			deltas[*item.CylinderType] += item.Quantity
		case enum.TransactionBuyback, enum.TransactionReturnEmpty:
			deltas[*item.CylinderType] -= item.Quantity
		}
	}
	return deltas
}

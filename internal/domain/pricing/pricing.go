package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/pkg/apperror"
)

// ReferenceKg is the plant-price reference cylinder size. All other sizes
// derive from the per-kg price of this one.
var ReferenceKg = decimal.NewFromFloat(11.8)

// UnitPricePerKg derives the sale price per kilogram from the daily plant
// price and a category margin: plantPrice118Kg / 11.8 + marginPerKg.
// A zero plant price is a valid configuration; only negative inputs are
// rejected. The result is unrounded; compounding rounding error across
// multi-item bills is avoided by rounding only at invoicing.
func UnitPricePerKg(plantPrice118Kg, marginPerKg decimal.Decimal) (decimal.Decimal, error) {
	if plantPrice118Kg.IsNegative() || marginPerKg.IsNegative() {
		return decimal.Zero, apperror.ErrInvalidPricingInput
	}
	return plantPrice118Kg.Div(ReferenceKg).Add(marginPerKg), nil
}

// CylinderPrice scales the per-kg price to a cylinder's nominal content.
func CylinderPrice(unitPricePerKg, targetKg decimal.Decimal) (decimal.Decimal, error) {
	if unitPricePerKg.IsNegative() || targetKg.IsNegative() {
		return decimal.Zero, apperror.ErrInvalidPricingInput
	}
	return unitPricePerKg.Mul(targetKg), nil
}

// RoundInvoice rounds a computed amount to the currency's minor unit,
// half-up. Applied exclusively at the invoicing/display boundary.
func RoundInvoice(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// RoundBill rounds to a whole currency unit, half-up, for bill totals
// printed without minor units.
func RoundBill(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(0)
}

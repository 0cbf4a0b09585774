package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/apperror"
)

// RateForCondition maps a returned condition to its buyback rate. Full
// returns are repurchased at the full-rate policy regardless of fill;
// empty returns carry no gas value.
func RateForCondition(c enum.ReturnedCondition) decimal.Decimal {
	switch c {
	case enum.ReturnedFull:
		return FullBuybackRate
	case enum.ReturnedPartial:
		return PartialBuybackRate
	case enum.ReturnedEmpty:
		return decimal.Zero
	}
	return decimal.Zero
}

// BuybackPricePerItem computes the repurchase price of one returned
// cylinder: originalSoldPrice x (remainingKg / nominalKg) x rate. The
// result is unrounded; rounding happens only when a bill is rendered.
func BuybackPricePerItem(originalSoldPrice, remainingKg, nominalKg, rate decimal.Decimal) (decimal.Decimal, error) {
	if originalSoldPrice.IsNegative() || remainingKg.IsNegative() || rate.IsNegative() {
		return decimal.Zero, apperror.ErrInvalidPricingInput
	}
	if nominalKg.Sign() <= 0 {
		return decimal.Zero, apperror.ErrInvalidPricingInput
	}
	if remainingKg.GreaterThan(nominalKg) {
		return decimal.Zero, apperror.NewBadRequestError("remaining kg exceeds cylinder capacity")
	}
	return originalSoldPrice.Mul(remainingKg.Div(nominalKg)).Mul(rate), nil
}

// BuybackTotal is the per-item price across the returned quantity.
func BuybackTotal(pricePerItem decimal.Decimal, quantity int) decimal.Decimal {
	return pricePerItem.Mul(decimal.NewFromInt(int64(quantity)))
}

package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amintahir16/lpg-gas-app-sub001/pkg/apperror"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestUnitPricePerKgWorkedExample(t *testing.T) {
	// Plant price 2750, margin 23/kg -> 2750/11.8 + 23 = 256.0508...
	unit, err := UnitPricePerKg(d("2750"), d("23"))
	require.NoError(t, err)

	assert.True(t, unit.Sub(d("256.0508")).Abs().LessThan(d("0.0001")),
		"got %s", unit)

	// 15kg cylinder -> 3840.76...; a whole-unit bill rounds to 3841.
	cylinder, err := CylinderPrice(unit, d("15"))
	require.NoError(t, err)
	assert.True(t, RoundBill(cylinder).Equal(d("3841")), "got %s", RoundBill(cylinder))
}

func TestZeroPlantPriceIsValid(t *testing.T) {
	unit, err := UnitPricePerKg(decimal.Zero, d("23"))
	require.NoError(t, err)
	assert.True(t, unit.Equal(d("23")))
}

func TestNegativeInputsRejected(t *testing.T) {
	_, err := UnitPricePerKg(d("-1"), d("23"))
	assert.ErrorIs(t, err, apperror.ErrInvalidPricingInput)

	_, err = UnitPricePerKg(d("2750"), d("-0.01"))
	assert.ErrorIs(t, err, apperror.ErrInvalidPricingInput)

	_, err = CylinderPrice(d("-5"), d("15"))
	assert.ErrorIs(t, err, apperror.ErrInvalidPricingInput)

	_, err = CylinderPrice(d("256"), d("-15"))
	assert.ErrorIs(t, err, apperror.ErrInvalidPricingInput)
}

func TestRoundingOnlyAtTheEdge(t *testing.T) {
	unit, err := UnitPricePerKg(d("2750"), d("23"))
	require.NoError(t, err)

	// Full precision through the multiplication, then one terminal round.
	perCylinder, err := CylinderPrice(unit, d("15"))
	require.NoError(t, err)
	twoCylinders := perCylinder.Mul(d("2"))

	// Rounding each line first would give 2x3840.76 = 7681.52; keeping
	// precision gives 7681.5254... which rounds to 7681.53.
	assert.False(t, perCylinder.Equal(RoundInvoice(perCylinder)))
	assert.True(t, RoundInvoice(twoCylinders).Equal(d("7681.53")), "got %s", RoundInvoice(twoCylinders))
}

func TestRoundInvoiceHalfUp(t *testing.T) {
	assert.True(t, RoundInvoice(d("10.005")).Equal(d("10.01")))
	assert.True(t, RoundInvoice(d("10.004")).Equal(d("10.00")))
	assert.True(t, RoundBill(d("3840.5")).Equal(d("3841")))
	assert.True(t, RoundBill(d("3840.49")).Equal(d("3840")))
}

package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestDeltaSigns(t *testing.T) {
	amount := d("100.50")

	tests := []struct {
		txType enum.TransactionType
		want   decimal.Decimal
	}{
		{enum.TransactionSale, d("100.50")},
		{enum.TransactionPayment, d("-100.50")},
		{enum.TransactionBuyback, d("-100.50")},
		{enum.TransactionAdjustment, d("-100.50")},
		{enum.TransactionCreditNote, d("-100.50")},
		{enum.TransactionReturnEmpty, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.txType.String(), func(t *testing.T) {
			assert.True(t, Delta(tt.txType, amount).Equal(tt.want),
				"delta for %s", tt.txType)
		})
	}
}

func TestDeltaCoversEveryTransactionType(t *testing.T) {
	// Conservation depends on the delta mapping being total.
	for _, txType := range enum.AllTransactionTypes {
		assert.NotPanics(t, func() { Delta(txType, d("1")) })
	}
}

func TestDueDelta(t *testing.T) {
	standard := enum.CylinderStandard
	domestic := enum.CylinderDomestic

	items := []entity.LineItem{
		{ProductName: "15kg cylinder", Quantity: 2, CylinderType: &standard},
		{ProductName: "11.8kg cylinder", Quantity: 1, CylinderType: &domestic},
		{ProductName: "regulator", Quantity: 3}, // no cylinder type, no due effect
	}

	sale := DueDelta(enum.TransactionSale, items)
	assert.Equal(t, 2, sale[standard])
	assert.Equal(t, 1, sale[domestic])
	assert.Len(t, sale, 2)

	buyback := DueDelta(enum.TransactionBuyback, items)
	assert.Equal(t, -2, buyback[standard])
	assert.Equal(t, -1, buyback[domestic])

	returnEmpty := DueDelta(enum.TransactionReturnEmpty, items)
	assert.Equal(t, -2, returnEmpty[standard])

	payment := DueDelta(enum.TransactionPayment, items)
	assert.Empty(t, payment)
}

func TestBuybackPricePerItem(t *testing.T) {
	// Worked example: cylinder sold at 3841 with 7.5 of 15kg left,
	// partial rate 0.6 -> 3841 * 0.5 * 0.6 = 1152.3.
	price, err := BuybackPricePerItem(d("3841"), d("7.5"), d("15"), PartialBuybackRate)
	require.NoError(t, err)
	assert.True(t, price.Equal(d("1152.3")), "got %s", price)

	total := BuybackTotal(price, 2)
	assert.True(t, total.Equal(d("2304.6")), "got %s", total)
}

func TestBuybackPriceRejectsBadInputs(t *testing.T) {
	tests := []struct {
		name                        string
		sold, remaining, nominal, rate string
	}{
		{"negative sold price", "-1", "5", "15", "0.6"},
		{"negative remaining", "100", "-1", "15", "0.6"},
		{"zero nominal", "100", "5", "0", "0.6"},
		{"negative rate", "100", "5", "15", "-0.6"},
		{"remaining above capacity", "100", "16", "15", "0.6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuybackPricePerItem(d(tt.sold), d(tt.remaining), d(tt.nominal), d(tt.rate))
			assert.Error(t, err)
		})
	}
}

func TestBuybackMonotonicInRemainingKg(t *testing.T) {
	sold := d("3841")
	nominal := d("15")

	prev := decimal.Zero
	for kg := 0; kg <= 15; kg++ {
		price, err := BuybackPricePerItem(sold, decimal.NewFromInt(int64(kg)), nominal, PartialBuybackRate)
		require.NoError(t, err)
		assert.True(t, price.GreaterThanOrEqual(prev),
			"price at %dkg (%s) below price at %dkg (%s)", kg, price, kg-1, prev)
		prev = price
	}
}

func TestRateForCondition(t *testing.T) {
	assert.True(t, RateForCondition(enum.ReturnedFull).Equal(FullBuybackRate))
	assert.True(t, RateForCondition(enum.ReturnedPartial).Equal(PartialBuybackRate))
	assert.True(t, RateForCondition(enum.ReturnedEmpty).IsZero())
}

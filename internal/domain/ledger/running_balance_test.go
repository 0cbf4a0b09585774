package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
)

func tx(txType enum.TransactionType, amount, date, clock string) entity.Transaction {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.Transaction{
		Type:        txType,
		TotalAmount: d(amount),
		Date:        day,
		Time:        clock,
	}
}

func TestRunningBalanceSortsByDateAndTime(t *testing.T) {
	// Supplied newest-first, as a statement view would hold them.
	txs := []entity.Transaction{
		tx(enum.TransactionPayment, "3000", "2026-09-02", "09:00:00"),
		tx(enum.TransactionSale, "7682", "2026-09-01", "10:30:00"),
	}

	annotated := RunningBalance(txs)

	require.Len(t, annotated, 2)
	// Input ordering preserved: index 0 is still the payment.
	assert.True(t, annotated[0].RunningBalance.Equal(d("4682")), "got %s", annotated[0].RunningBalance)
	assert.True(t, annotated[1].RunningBalance.Equal(d("7682")), "got %s", annotated[1].RunningBalance)
}

func TestRunningBalanceWorkedExample(t *testing.T) {
	// SALE of 2x 3841, PAYMENT of 3000, then a partial BUYBACK at 1152.3.
	txs := []entity.Transaction{
		tx(enum.TransactionSale, "7682", "2026-09-01", "10:00:00"),
		tx(enum.TransactionPayment, "3000", "2026-09-01", "15:00:00"),
		tx(enum.TransactionBuyback, "1152.3", "2026-09-02", "11:00:00"),
	}

	annotated := RunningBalance(txs)

	assert.True(t, annotated[0].RunningBalance.Equal(d("7682")))
	assert.True(t, annotated[1].RunningBalance.Equal(d("4682")))
	assert.True(t, annotated[2].RunningBalance.Equal(d("3529.7")), "got %s", annotated[2].RunningBalance)
}

func TestRunningBalanceSkipsVoided(t *testing.T) {
	voided := tx(enum.TransactionSale, "500", "2026-09-01", "12:00:00")
	voided.Voided = true

	txs := []entity.Transaction{
		tx(enum.TransactionSale, "1000", "2026-09-01", "10:00:00"),
		voided,
		tx(enum.TransactionPayment, "400", "2026-09-01", "14:00:00"),
	}

	annotated := RunningBalance(txs)

	assert.True(t, annotated[0].RunningBalance.Equal(d("1000")))
	// Voided entry carries the balance it inherited.
	assert.True(t, annotated[1].RunningBalance.Equal(d("1000")))
	assert.True(t, annotated[2].RunningBalance.Equal(d("600")))
}

func TestRunningBalanceIsReplayable(t *testing.T) {
	txs := []entity.Transaction{
		tx(enum.TransactionSale, "250.75", "2026-08-30", "09:00:00"),
		tx(enum.TransactionReturnEmpty, "0", "2026-08-31", "09:00:00"),
		tx(enum.TransactionCreditNote, "50.25", "2026-09-01", "09:00:00"),
	}

	first := RunningBalance(txs)
	second := RunningBalance(txs)

	for i := range first {
		assert.True(t, first[i].RunningBalance.Equal(second[i].RunningBalance))
	}
	// Input untouched.
	assert.True(t, txs[0].RunningBalance.IsZero())
}

func TestConservation(t *testing.T) {
	txs := []entity.Transaction{
		tx(enum.TransactionSale, "1000", "2026-09-01", "08:00:00"),
		tx(enum.TransactionPayment, "300", "2026-09-01", "09:00:00"),
		tx(enum.TransactionBuyback, "150.50", "2026-09-01", "10:00:00"),
		tx(enum.TransactionAdjustment, "49.50", "2026-09-01", "11:00:00"),
		tx(enum.TransactionReturnEmpty, "0", "2026-09-01", "12:00:00"),
	}

	annotated := RunningBalance(txs)
	last := annotated[len(annotated)-1]

	assert.True(t, NetChange(txs).Equal(last.RunningBalance),
		"net change %s vs final running balance %s", NetChange(txs), last.RunningBalance)
	assert.True(t, NetChange(txs).Equal(d("500")))
}

func TestRunningBalanceB2C(t *testing.T) {
	day, _ := time.Parse("2006-01-02", "2026-09-01")
	txs := []entity.B2CTransaction{
		{Type: enum.TransactionSale, TotalAmount: d("2000"), Date: day, Time: "10:00:00"},
		{Type: enum.TransactionCreditNote, TotalAmount: d("750"), Date: day, Time: "11:00:00"},
	}

	annotated := RunningBalanceB2C(txs)

	assert.True(t, annotated[0].RunningBalance.Equal(d("2000")))
	assert.True(t, annotated[1].RunningBalance.Equal(d("1250")))
}

func TestNetChangeExcludesVoided(t *testing.T) {
	voided := tx(enum.TransactionSale, "999", "2026-09-01", "10:00:00")
	voided.Voided = true

	txs := []entity.Transaction{
		voided,
		tx(enum.TransactionSale, "100", "2026-09-01", "11:00:00"),
	}

	assert.True(t, NetChange(txs).Equal(decimal.NewFromInt(100)))
}

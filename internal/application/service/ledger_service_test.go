package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/apperror"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/billno"
)

func newLedgerFixture(t *testing.T) (*LedgerService, *fakeCustomerRepo, *fakeTransactionRepo, *entity.Customer) {
	t.Helper()
	customers := newFakeCustomerRepo()
	txs := newFakeTransactionRepo()
	svc := NewLedgerService(customers, txs, billno.NewGenerator("LPG"), fakeTxManager{})

	customer := &entity.Customer{Name: "Marhaba Hotel", PaymentTermsDays: 30}
	require.NoError(t, customers.Create(context.Background(), customer))
	return svc, customers, txs, customer
}

func standardType() *enum.CylinderType {
	t := enum.CylinderStandard
	return &t
}

func saleInput(c *entity.Customer, qty int, price decimal.Decimal) *PostTransactionInput {
	return &PostTransactionInput{
		CustomerID: c.ID,
		Type:       enum.TransactionSale,
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:       "10:30:00",
		Items: []LineItemInput{{
			ProductName:  "15kg Cylinder",
			Quantity:     qty,
			PricePerItem: price,
			CylinderType: standardType(),
		}},
	}
}

func TestPostSaleIncreasesBalanceAndDues(t *testing.T) {
	svc, customers, _, customer := newLedgerFixture(t)
	ctx := context.Background()

	tx, err := svc.PostTransaction(ctx, saleInput(customer, 2, decimal.NewFromInt(3841)))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7682).Equal(tx.TotalAmount))
	assert.True(t, billno.Valid(tx.BillNumber))

	got, _ := customers.GetByID(ctx, customer.ID)
	assert.True(t, decimal.NewFromInt(7682).Equal(got.LedgerBalance))
	assert.Equal(t, 2, got.StandardDue)
	assert.Equal(t, 0, got.DomesticDue)
}

func TestPaymentReducesBalanceWithoutTouchingDues(t *testing.T) {
	svc, customers, _, customer := newLedgerFixture(t)
	ctx := context.Background()

	_, err := svc.PostTransaction(ctx, saleInput(customer, 2, decimal.NewFromInt(3841)))
	require.NoError(t, err)

	_, err = svc.PostTransaction(ctx, &PostTransactionInput{
		CustomerID:  customer.ID,
		Type:        enum.TransactionPayment,
		Date:        time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		Time:        "09:00:00",
		TotalAmount: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)

	got, _ := customers.GetByID(ctx, customer.ID)
	assert.True(t, decimal.NewFromInt(4682).Equal(got.LedgerBalance))
	assert.Equal(t, 2, got.StandardDue)
}

func TestBuybackFreezesPricingOnLine(t *testing.T) {
	svc, customers, _, customer := newLedgerFixture(t)
	ctx := context.Background()

	_, err := svc.PostTransaction(ctx, saleInput(customer, 2, decimal.NewFromInt(3841)))
	require.NoError(t, err)

	condition := enum.ReturnedPartial
	remaining := decimal.NewFromFloat(7.5)
	sold := decimal.NewFromInt(3841)
	tx, err := svc.PostTransaction(ctx, &PostTransactionInput{
		CustomerID: customer.ID,
		Type:       enum.TransactionBuyback,
		Date:       time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Time:       "16:00:00",
		Items: []LineItemInput{{
			ProductName:       "15kg Cylinder Buyback",
			Quantity:          1,
			CylinderType:      standardType(),
			ReturnedCondition: &condition,
			RemainingKg:       &remaining,
			OriginalSoldPrice: &sold,
		}},
	})
	require.NoError(t, err)

	// 3841 * (7.5/15) * 0.60 = 1152.30
	want := decimal.NewFromFloat(1152.3)
	require.Len(t, tx.Items, 1)
	item := tx.Items[0]
	require.NotNil(t, item.BuybackPricePerItem)
	assert.True(t, want.Equal(*item.BuybackPricePerItem), "got %s", item.BuybackPricePerItem)
	assert.True(t, decimal.NewFromFloat(0.60).Equal(*item.BuybackRate))
	assert.True(t, want.Equal(tx.TotalAmount))

	got, _ := customers.GetByID(ctx, customer.ID)
	assert.True(t, decimal.NewFromInt(7682).Sub(want).Equal(got.LedgerBalance))
	assert.Equal(t, 1, got.StandardDue)
}

func TestVoidInvertsEffectsExactly(t *testing.T) {
	svc, customers, _, customer := newLedgerFixture(t)
	ctx := context.Background()

	tx, err := svc.PostTransaction(ctx, saleInput(customer, 2, decimal.NewFromInt(3841)))
	require.NoError(t, err)

	before, _ := customers.GetByID(ctx, customer.ID)
	voided, err := svc.VoidTransaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.True(t, voided.Voided)
	require.NotNil(t, voided.VoidedAt)

	after, _ := customers.GetByID(ctx, customer.ID)
	assert.True(t, after.LedgerBalance.IsZero(), "balance %s", after.LedgerBalance)
	assert.Equal(t, 0, after.StandardDue)
	assert.True(t, before.LedgerBalance.Equal(decimal.NewFromInt(7682)))
}

func TestVoidTwiceIsRejected(t *testing.T) {
	svc, _, _, customer := newLedgerFixture(t)
	ctx := context.Background()

	tx, err := svc.PostTransaction(ctx, saleInput(customer, 1, decimal.NewFromInt(3841)))
	require.NoError(t, err)

	_, err = svc.VoidTransaction(ctx, tx.ID)
	require.NoError(t, err)

	_, err = svc.VoidTransaction(ctx, tx.ID)
	assert.ErrorIs(t, err, apperror.ErrAlreadyVoided)
}

func TestDuplicateBillNumberRejected(t *testing.T) {
	svc, _, _, customer := newLedgerFixture(t)
	ctx := context.Background()

	in := saleInput(customer, 1, decimal.NewFromInt(3841))
	in.BillNumber = "LPG-20260310-000001"
	_, err := svc.PostTransaction(ctx, in)
	require.NoError(t, err)

	dup := saleInput(customer, 1, decimal.NewFromInt(3841))
	dup.BillNumber = "LPG-20260310-000001"
	_, err = svc.PostTransaction(ctx, dup)
	assert.ErrorIs(t, err, apperror.ErrDuplicateBillNumber)
}

func TestMalformedBillNumberRejected(t *testing.T) {
	svc, _, _, customer := newLedgerFixture(t)

	in := saleInput(customer, 1, decimal.NewFromInt(3841))
	in.BillNumber = "BILL-1"
	_, err := svc.PostTransaction(context.Background(), in)
	require.Error(t, err)
}

func TestDueClampsAtZeroOnExcessReturn(t *testing.T) {
	svc, customers, _, customer := newLedgerFixture(t)
	ctx := context.Background()

	_, err := svc.PostTransaction(ctx, saleInput(customer, 1, decimal.NewFromInt(3841)))
	require.NoError(t, err)

	// Customer returns more empties than the ledger says they hold.
	_, err = svc.PostTransaction(ctx, &PostTransactionInput{
		CustomerID: customer.ID,
		Type:       enum.TransactionReturnEmpty,
		Date:       time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Time:       "11:00:00",
		Items: []LineItemInput{{
			ProductName:  "Empty Return",
			Quantity:     3,
			CylinderType: standardType(),
		}},
	})
	require.NoError(t, err)

	got, _ := customers.GetByID(ctx, customer.ID)
	assert.Equal(t, 0, got.StandardDue)
	// RETURN_EMPTY carries no money effect.
	assert.True(t, decimal.NewFromInt(3841).Equal(got.LedgerBalance))
}

func TestPostToUnknownCustomerFails(t *testing.T) {
	svc, _, _, _ := newLedgerFixture(t)

	in := saleInput(&entity.Customer{}, 1, decimal.NewFromInt(3841))
	_, err := svc.PostTransaction(context.Background(), in)
	require.Error(t, err)
}

func TestBillNumbersAreSequentialWithinDay(t *testing.T) {
	svc, _, _, customer := newLedgerFixture(t)
	ctx := context.Background()

	first, err := svc.PostTransaction(ctx, saleInput(customer, 1, decimal.NewFromInt(3841)))
	require.NoError(t, err)
	second, err := svc.PostTransaction(ctx, saleInput(customer, 1, decimal.NewFromInt(3841)))
	require.NoError(t, err)

	assert.NotEqual(t, first.BillNumber, second.BillNumber)
	assert.True(t, first.BillNumber < second.BillNumber)
}

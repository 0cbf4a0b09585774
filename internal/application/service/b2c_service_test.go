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

func newB2CFixture(t *testing.T) (*B2CService, *fakeB2CCustomerRepo, *fakeHoldingRepo, *entity.B2CCustomer) {
	t.Helper()
	customers := newFakeB2CCustomerRepo()
	txs := newFakeB2CTransactionRepo()
	holdings := newFakeHoldingRepo()
	svc := NewB2CService(customers, txs, holdings, billno.NewGenerator("WLK"), fakeTxManager{})

	customer := &entity.B2CCustomer{Name: "Ahmed"}
	require.NoError(t, customers.Create(context.Background(), customer))
	return svc, customers, holdings, customer
}

func domesticType() *enum.CylinderType {
	t := enum.CylinderDomestic
	return &t
}

func depositInput(c *entity.B2CCustomer, day int, qty int, amount decimal.Decimal) *PostB2CTransactionInput {
	return &PostB2CTransactionInput{
		CustomerID: c.ID,
		Type:       enum.TransactionSale,
		Date:       time.Date(2026, 4, day, 0, 0, 0, 0, time.UTC),
		Time:       "12:00:00",
		Items: []B2CLineInput{{
			ProductName:  "Security Deposit 11.8kg",
			Quantity:     qty,
			PricePerItem: amount,
			CylinderType: domesticType(),
			IsSecurity:   true,
		}},
	}
}

func TestSecurityDepositOpensHolding(t *testing.T) {
	svc, customers, holdings, customer := newB2CFixture(t)
	ctx := context.Background()

	_, err := svc.PostTransaction(ctx, depositInput(customer, 1, 2, decimal.NewFromInt(2000)))
	require.NoError(t, err)

	open, err := holdings.ListOpenByCustomerAndType(ctx, customer.ID, enum.CylinderDomestic)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, 2, open[0].Quantity)
	assert.True(t, decimal.NewFromInt(4000).Equal(open[0].SecurityAmount))

	got, _ := customers.GetByID(ctx, customer.ID)
	assert.True(t, decimal.NewFromInt(4000).Equal(got.DepositsHeld))
	assert.True(t, decimal.NewFromInt(4000).Equal(got.LedgerBalance))
}

func TestDepositReturnClosesOldestFirstWithDeduction(t *testing.T) {
	svc, customers, holdings, customer := newB2CFixture(t)
	ctx := context.Background()

	_, err := svc.PostTransaction(ctx, depositInput(customer, 1, 1, decimal.NewFromInt(2000)))
	require.NoError(t, err)
	_, err = svc.PostTransaction(ctx, depositInput(customer, 5, 1, decimal.NewFromInt(3000)))
	require.NoError(t, err)

	tx, err := svc.PostTransaction(ctx, &PostB2CTransactionInput{
		CustomerID: customer.ID,
		Type:       enum.TransactionCreditNote,
		Date:       time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Time:       "15:00:00",
		Items: []B2CLineInput{{
			ProductName:  "Deposit Return 11.8kg",
			Quantity:     1,
			CylinderType: domesticType(),
			IsSecurity:   true,
			IsReturn:     true,
		}},
	})
	require.NoError(t, err)

	// Oldest holding (2000) closes; refund 2000 * 0.75 = 1500.
	assert.True(t, decimal.NewFromInt(1500).Equal(tx.TotalAmount), "got %s", tx.TotalAmount)

	all, _ := holdings.ListByCustomer(ctx, customer.ID)
	var closed, open int
	for _, h := range all {
		if h.IsReturned {
			closed++
			require.NotNil(t, h.ReturnDeduction)
			assert.True(t, decimal.NewFromInt(500).Equal(*h.ReturnDeduction))
		} else {
			open++
			assert.True(t, decimal.NewFromInt(3000).Equal(h.SecurityAmount))
		}
	}
	assert.Equal(t, 1, closed)
	assert.Equal(t, 1, open)

	got, _ := customers.GetByID(ctx, customer.ID)
	assert.True(t, decimal.NewFromInt(3000).Equal(got.DepositsHeld))
}

func TestPartialQuantityReturnSplitsHolding(t *testing.T) {
	svc, customers, holdings, customer := newB2CFixture(t)
	ctx := context.Background()

	_, err := svc.PostTransaction(ctx, depositInput(customer, 1, 3, decimal.NewFromInt(2000)))
	require.NoError(t, err)

	_, err = svc.PostTransaction(ctx, &PostB2CTransactionInput{
		CustomerID: customer.ID,
		Type:       enum.TransactionCreditNote,
		Date:       time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
		Time:       "10:00:00",
		Items: []B2CLineInput{{
			ProductName:  "Deposit Return 11.8kg",
			Quantity:     1,
			CylinderType: domesticType(),
			IsSecurity:   true,
			IsReturn:     true,
		}},
	})
	require.NoError(t, err)

	open, _ := holdings.ListOpenByCustomerAndType(ctx, customer.ID, enum.CylinderDomestic)
	require.Len(t, open, 1)
	assert.Equal(t, 2, open[0].Quantity)
	assert.True(t, decimal.NewFromInt(4000).Equal(open[0].SecurityAmount))

	got, _ := customers.GetByID(ctx, customer.ID)
	assert.True(t, decimal.NewFromInt(4000).Equal(got.DepositsHeld))
}

func TestReturnBeyondOpenHoldingsRejected(t *testing.T) {
	svc, customers, holdings, customer := newB2CFixture(t)
	ctx := context.Background()

	_, err := svc.PostTransaction(ctx, depositInput(customer, 1, 1, decimal.NewFromInt(2000)))
	require.NoError(t, err)

	_, err = svc.PostTransaction(ctx, &PostB2CTransactionInput{
		CustomerID: customer.ID,
		Type:       enum.TransactionCreditNote,
		Date:       time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC),
		Time:       "10:00:00",
		Items: []B2CLineInput{{
			ProductName:  "Deposit Return 11.8kg",
			Quantity:     2,
			CylinderType: domesticType(),
			IsSecurity:   true,
			IsReturn:     true,
		}},
	})
	assert.ErrorIs(t, err, apperror.ErrInsufficientHolding)

	// Nothing was written: the holding stays open and untouched.
	open, _ := holdings.ListOpenByCustomerAndType(ctx, customer.ID, enum.CylinderDomestic)
	require.Len(t, open, 1)
	assert.False(t, open[0].IsReturned)

	got, _ := customers.GetByID(ctx, customer.ID)
	assert.True(t, decimal.NewFromInt(2000).Equal(got.DepositsHeld))
}

func TestDepositReturnOnSaleRejected(t *testing.T) {
	svc, customers, holdings, customer := newB2CFixture(t)
	ctx := context.Background()

	_, err := svc.PostTransaction(ctx, depositInput(customer, 1, 1, decimal.NewFromInt(2000)))
	require.NoError(t, err)
	before, _ := customers.GetByID(ctx, customer.ID)

	// A refund folded into a sale would add the refunded amount to the
	// balance instead of subtracting it, so the posting is rejected.
	_, err = svc.PostTransaction(ctx, &PostB2CTransactionInput{
		CustomerID: customer.ID,
		Type:       enum.TransactionSale,
		Date:       time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC),
		Time:       "10:00:00",
		Items: []B2CLineInput{
			{
				ProductName:  "11.8kg Refill",
				Quantity:     1,
				PricePerItem: decimal.NewFromInt(3022),
				CylinderType: domesticType(),
			},
			{
				ProductName:  "Deposit Return 11.8kg",
				Quantity:     1,
				CylinderType: domesticType(),
				IsSecurity:   true,
				IsReturn:     true,
			},
		},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsAppError(err))

	open, _ := holdings.ListOpenByCustomerAndType(ctx, customer.ID, enum.CylinderDomestic)
	require.Len(t, open, 1)
	assert.False(t, open[0].IsReturned)

	got, _ := customers.GetByID(ctx, customer.ID)
	assert.True(t, before.LedgerBalance.Equal(got.LedgerBalance))
	assert.True(t, before.DepositsHeld.Equal(got.DepositsHeld))
}

func TestB2CVoidReversesBalanceOnly(t *testing.T) {
	svc, customers, _, customer := newB2CFixture(t)
	ctx := context.Background()

	tx, err := svc.PostTransaction(ctx, &PostB2CTransactionInput{
		CustomerID: customer.ID,
		Type:       enum.TransactionSale,
		Date:       time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Time:       "13:00:00",
		Items: []B2CLineInput{{
			ProductName:  "11.8kg Refill",
			Quantity:     1,
			PricePerItem: decimal.NewFromInt(3022),
			CylinderType: domesticType(),
		}},
	})
	require.NoError(t, err)

	_, err = svc.VoidTransaction(ctx, tx.ID)
	require.NoError(t, err)

	got, _ := customers.GetByID(ctx, customer.ID)
	assert.True(t, got.LedgerBalance.IsZero())

	_, err = svc.VoidTransaction(ctx, tx.ID)
	assert.ErrorIs(t, err, apperror.ErrAlreadyVoided)
}

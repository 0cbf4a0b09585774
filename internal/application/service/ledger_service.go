package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/ledger"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/repository"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/apperror"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/billno"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/pagination"
)

// LedgerService posts and voids B2B ledger transactions. Every mutation
// runs inside a single database transaction with the customer row locked,
// so the balance and due aggregates never drift from the entry stream.
type LedgerService struct {
	customerRepo repository.CustomerRepository
	txRepo       repository.TransactionRepository
	bills        *billno.Generator
	txManager    repository.TxManager
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
	bills *billno.Generator,
	txManager repository.TxManager,
) *LedgerService {
	return &LedgerService{
		customerRepo: customerRepo,
		txRepo:       txRepo,
		bills:        bills,
		txManager:    txManager,
	}
}

// LineItemInput represents one line of a transaction to post
type LineItemInput struct {
	ProductName  string
	Quantity     int
	PricePerItem decimal.Decimal
	CylinderType *enum.CylinderType

	// Buyback lines only.
	ReturnedCondition *enum.ReturnedCondition
	RemainingKg       *decimal.Decimal
	OriginalSoldPrice *decimal.Decimal
}

// PostTransactionInput represents the transaction to post
type PostTransactionInput struct {
	CustomerID       uuid.UUID
	Type             enum.TransactionType
	BillNumber       string
	Date             time.Time
	Time             string
	TotalAmount      decimal.Decimal
	PaymentReference *string
	Notes            *string
	Items            []LineItemInput
}

// PostTransaction appends a transaction to a customer's ledger and applies
// its balance and cylinder-due effects atomically.
func (s *LedgerService) PostTransaction(ctx context.Context, input *PostTransactionInput) (*entity.Transaction, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Unknown transaction type")
	}

	billNumber := input.BillNumber
	if billNumber == "" {
		billNumber = s.bills.Next()
	} else if !billno.Valid(billNumber) {
		return nil, apperror.NewBadRequestError("Bill number must match PREFIX-YYYYMMDD-NNNNNN")
	}

	items, total, err := buildLineItems(input.Type, input.Items)
	if err != nil {
		return nil, err
	}
	if input.Type == enum.TransactionPayment || input.Type == enum.TransactionAdjustment || input.Type == enum.TransactionCreditNote {
		// Header-only entries carry the amount directly.
		total = input.TotalAmount
	}
	if input.Type == enum.TransactionReturnEmpty {
		// Empty returns move cylinders, not money.
		total = decimal.Zero
	}
	if total.IsNegative() {
		return nil, apperror.NewBadRequestError("Transaction amount cannot be negative")
	}

	tx := &entity.Transaction{
		CustomerID:       input.CustomerID,
		Type:             input.Type,
		BillNumber:       billNumber,
		Date:             input.Date,
		Time:             input.Time,
		TotalAmount:      total,
		PaymentReference: input.PaymentReference,
		Notes:            input.Notes,
		Items:            items,
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		customer, err := s.customerRepo.GetByIDForUpdate(ctx, input.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperror.NewNotFoundError("Customer")
		}

		exists, err := s.txRepo.ExistsBillNumber(ctx, billNumber)
		if err != nil {
			return err
		}
		if exists {
			return apperror.ErrDuplicateBillNumber
		}

		if err := s.txRepo.Create(ctx, tx); err != nil {
			return err
		}

		applyEffects(customer, tx, false)
		return s.customerRepo.Update(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("transaction posted",
		"bill_number", tx.BillNumber,
		"type", tx.Type.String(),
		"amount", tx.TotalAmount,
		"customer_id", tx.CustomerID)
	return tx, nil
}

// VoidTransaction reverses a posted transaction's ledger effects exactly
// and marks it voided. The entry itself stays in the ledger.
func (s *LedgerService) VoidTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var voided *entity.Transaction
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		tx, err := s.txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			return apperror.NewNotFoundError("Transaction")
		}
		if tx.Voided {
			return apperror.ErrAlreadyVoided
		}

		customer, err := s.customerRepo.GetByIDForUpdate(ctx, tx.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperror.NewNotFoundError("Customer")
		}

		now := time.Now()
		tx.Voided = true
		tx.VoidedAt = &now
		if err := s.txRepo.Update(ctx, tx); err != nil {
			return err
		}

		applyEffects(customer, tx, true)
		if err := s.customerRepo.Update(ctx, customer); err != nil {
			return err
		}

		voided = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("transaction voided",
		"bill_number", voided.BillNumber,
		"type", voided.Type.String(),
		"amount", voided.TotalAmount,
		"customer_id", voided.CustomerID)
	return voided, nil
}

// GetTransaction retrieves a transaction by ID
func (s *LedgerService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return tx, nil
}

// ListTransactions lists transactions with filtering
func (s *LedgerService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	txs, total, err := s.txRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(txs, pag), nil
}

// buildLineItems validates input lines, computes totals and freezes buyback
// pricing onto the stored line.
func buildLineItems(txType enum.TransactionType, inputs []LineItemInput) ([]entity.LineItem, decimal.Decimal, error) {
	items := make([]entity.LineItem, 0, len(inputs))
	total := decimal.Zero

	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, decimal.Zero, apperror.NewBadRequestError("Line quantity must be positive")
		}

		item := entity.LineItem{
			ProductName:  in.ProductName,
			Quantity:     in.Quantity,
			PricePerItem: in.PricePerItem,
			CylinderType: in.CylinderType,
		}

		if txType == enum.TransactionBuyback {
			if in.ReturnedCondition == nil || in.CylinderType == nil || in.OriginalSoldPrice == nil {
				return nil, decimal.Zero, apperror.NewBadRequestError("Buyback lines need cylinder type, condition and original sold price")
			}
			rate := ledger.RateForCondition(*in.ReturnedCondition)
			remaining := in.CylinderType.NominalKg()
			if *in.ReturnedCondition == enum.ReturnedPartial {
				if in.RemainingKg == nil {
					return nil, decimal.Zero, apperror.NewBadRequestError("Partial buyback lines need remaining kg")
				}
				remaining = *in.RemainingKg
			} else if *in.ReturnedCondition == enum.ReturnedEmpty {
				remaining = decimal.Zero
			}

			perItem, err := ledger.BuybackPricePerItem(*in.OriginalSoldPrice, remaining, in.CylinderType.NominalKg(), rate)
			if err != nil {
				return nil, decimal.Zero, err
			}
			lineTotal := ledger.BuybackTotal(perItem, in.Quantity)

			item.ReturnedCondition = in.ReturnedCondition
			item.RemainingKg = &remaining
			item.OriginalSoldPrice = in.OriginalSoldPrice
			item.BuybackRate = &rate
			item.BuybackPricePerItem = &perItem
			item.BuybackTotal = &lineTotal
			item.PricePerItem = perItem
			item.TotalPrice = lineTotal
		} else {
			item.TotalPrice = in.PricePerItem.Mul(decimal.NewFromInt(int64(in.Quantity)))
		}

		total = total.Add(item.TotalPrice)
		items = append(items, item)
	}

	return items, total, nil
}

// applyEffects folds a transaction's balance and due deltas into the
// customer aggregates. reverse applies the exact negation, used by void.
func applyEffects(customer *entity.Customer, tx *entity.Transaction, reverse bool) {
	delta := ledger.Delta(tx.Type, tx.TotalAmount)
	dues := ledger.DueDelta(tx.Type, tx.Items)
	if reverse {
		delta = delta.Neg()
		for t, n := range dues {
			dues[t] = -n
		}
	}

	customer.LedgerBalance = customer.LedgerBalance.Add(delta)
	for t, n := range dues {
		next := customer.Due(t) + n
		if next < 0 {
			slog.Warn("cylinder due clamped at zero",
				"customer_id", customer.ID,
				"cylinder_type", t.String(),
				"computed", next)
			next = 0
		}
		customer.SetDue(t, next)
	}
}

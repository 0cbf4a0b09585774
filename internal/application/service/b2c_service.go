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

// B2CService posts walk-in transactions. Security deposits open cylinder
// holdings; deposit returns close them oldest first with the standard
// deduction withheld.
type B2CService struct {
	customerRepo repository.B2CCustomerRepository
	txRepo       repository.B2CTransactionRepository
	holdingRepo  repository.HoldingRepository
	bills        *billno.Generator
	txManager    repository.TxManager
}

// NewB2CService creates a new walk-in ledger service
func NewB2CService(
	customerRepo repository.B2CCustomerRepository,
	txRepo repository.B2CTransactionRepository,
	holdingRepo repository.HoldingRepository,
	bills *billno.Generator,
	txManager repository.TxManager,
) *B2CService {
	return &B2CService{
		customerRepo: customerRepo,
		txRepo:       txRepo,
		holdingRepo:  holdingRepo,
		bills:        bills,
		txManager:    txManager,
	}
}

// B2CLineInput represents one line of a walk-in transaction
type B2CLineInput struct {
	ProductName  string
	Quantity     int
	PricePerItem decimal.Decimal
	CylinderType *enum.CylinderType

	// IsSecurity marks deposit lines; IsReturn marks deposit refunds.
	IsSecurity bool
	IsReturn   bool
}

// PostB2CTransactionInput represents the walk-in transaction to post
type PostB2CTransactionInput struct {
	CustomerID       uuid.UUID
	Type             enum.TransactionType
	BillNumber       string
	Date             time.Time
	Time             string
	TotalAmount      decimal.Decimal
	PaymentReference *string
	Notes            *string
	Items            []B2CLineInput
}

// PostTransaction appends a walk-in transaction and settles its deposit
// side effects in the same database transaction.
func (s *B2CService) PostTransaction(ctx context.Context, input *PostB2CTransactionInput) (*entity.B2CTransaction, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Unknown transaction type")
	}

	billNumber := input.BillNumber
	if billNumber == "" {
		billNumber = s.bills.Next()
	} else if !billno.Valid(billNumber) {
		return nil, apperror.NewBadRequestError("Bill number must match PREFIX-YYYYMMDD-NNNNNN")
	}

	items := make([]entity.B2CLineItem, 0, len(input.Items))
	total := decimal.Zero
	for _, in := range input.Items {
		if in.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
		if (in.IsSecurity || in.IsReturn) && in.CylinderType == nil {
			return nil, apperror.NewBadRequestError("Deposit lines need a cylinder type")
		}
		// Refund lines rebuild the header total from closed holdings, and
		// only a credit note applies that total as a balance reduction.
		if in.IsReturn && input.Type != enum.TransactionCreditNote {
			return nil, apperror.NewBadRequestError("Deposit return lines are only valid on credit notes")
		}
		item := entity.B2CLineItem{
			ProductName:  in.ProductName,
			Quantity:     in.Quantity,
			PricePerItem: in.PricePerItem,
			TotalPrice:   in.PricePerItem.Mul(decimal.NewFromInt(int64(in.Quantity))),
			CylinderType: in.CylinderType,
			IsSecurity:   in.IsSecurity,
			IsReturn:     in.IsReturn,
		}
		if in.IsReturn {
			rate := ledger.SecurityDeductionRate
			item.DeductionRate = &rate
		}
		total = total.Add(item.TotalPrice)
		items = append(items, item)
	}
	if input.Type == enum.TransactionPayment || input.Type == enum.TransactionAdjustment || input.Type == enum.TransactionCreditNote {
		total = input.TotalAmount
	}
	if total.IsNegative() {
		return nil, apperror.NewBadRequestError("Transaction amount cannot be negative")
	}

	tx := &entity.B2CTransaction{
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

	txErr := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
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

		// Deposit returns are checked against open holdings before any
		// write, so a shortfall rejects the whole posting.
		hasReturn := false
		for i := range tx.Items {
			if tx.Items[i].IsReturn {
				hasReturn = true
				if err := s.closeHoldings(ctx, customer, &tx.Items[i], tx.Date); err != nil {
					return err
				}
			}
		}
		if hasReturn {
			// Refund lines only learn their amount from the closed
			// holdings, so the header total is rebuilt.
			recomputed := decimal.Zero
			for i := range tx.Items {
				recomputed = recomputed.Add(tx.Items[i].TotalPrice)
			}
			tx.TotalAmount = recomputed
		}

		if err := s.txRepo.Create(ctx, tx); err != nil {
			return err
		}

		for i := range tx.Items {
			if tx.Items[i].IsSecurity && !tx.Items[i].IsReturn {
				holding := &entity.CylinderHolding{
					CustomerID:     customer.ID,
					CylinderType:   *tx.Items[i].CylinderType,
					Quantity:       tx.Items[i].Quantity,
					SecurityAmount: tx.Items[i].TotalPrice,
					IssueDate:      tx.Date,
				}
				if err := s.holdingRepo.Create(ctx, holding); err != nil {
					return err
				}
				customer.DepositsHeld = customer.DepositsHeld.Add(holding.SecurityAmount)
			}
		}

		customer.LedgerBalance = customer.LedgerBalance.Add(ledger.Delta(tx.Type, tx.TotalAmount))
		return s.customerRepo.Update(ctx, customer)
	})
	if txErr != nil {
		return nil, txErr
	}

	slog.Info("transaction posted",
		"bill_number", tx.BillNumber,
		"type", tx.Type.String(),
		"amount", tx.TotalAmount,
		"customer_id", tx.CustomerID)
	return tx, nil
}

// closeHoldings settles a deposit-return line against the customer's open
// holdings, oldest issue date first. Partially consumed holdings are split
// so the remainder stays open with a proportional security amount.
func (s *B2CService) closeHoldings(ctx context.Context, customer *entity.B2CCustomer, item *entity.B2CLineItem, returnDate time.Time) error {
	open, err := s.holdingRepo.ListOpenByCustomerAndType(ctx, customer.ID, *item.CylinderType)
	if err != nil {
		return err
	}

	available := 0
	for _, h := range open {
		available += h.Quantity
	}
	if available < item.Quantity {
		return apperror.ErrInsufficientHolding
	}

	remaining := item.Quantity
	refundTotal := decimal.Zero
	deductionTotal := decimal.Zero

	for i := range open {
		if remaining == 0 {
			break
		}
		h := open[i]

		closeQty := h.Quantity
		closeAmount := h.SecurityAmount
		if closeQty > remaining {
			// Split: the closed part takes a proportional share of the
			// security amount, the rest stays open.
			closeQty = remaining
			perUnit := h.SecurityAmount.Div(decimal.NewFromInt(int64(h.Quantity)))
			closeAmount = perUnit.Mul(decimal.NewFromInt(int64(closeQty)))

			leftover := &entity.CylinderHolding{
				CustomerID:     h.CustomerID,
				CylinderType:   h.CylinderType,
				Quantity:       h.Quantity - closeQty,
				SecurityAmount: h.SecurityAmount.Sub(closeAmount),
				IssueDate:      h.IssueDate,
			}
			if err := s.holdingRepo.Create(ctx, leftover); err != nil {
				return err
			}
		}

		deduction := closeAmount.Mul(ledger.SecurityDeductionRate)
		refund := closeAmount.Sub(deduction)

		h.Quantity = closeQty
		h.SecurityAmount = closeAmount
		h.IsReturned = true
		h.ReturnDate = &returnDate
		h.ReturnDeduction = &deduction
		if err := s.holdingRepo.Update(ctx, &h); err != nil {
			return err
		}

		customer.DepositsHeld = customer.DepositsHeld.Sub(closeAmount)
		refundTotal = refundTotal.Add(refund)
		deductionTotal = deductionTotal.Add(deduction)
		remaining -= closeQty
	}

	// The line total becomes the refundable amount after deduction.
	item.TotalPrice = refundTotal
	if item.Quantity > 0 {
		item.PricePerItem = refundTotal.Div(decimal.NewFromInt(int64(item.Quantity)))
	}
	return nil
}

// GetTransaction retrieves a walk-in transaction by ID
func (s *B2CService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.B2CTransaction, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return tx, nil
}

// ListTransactions lists walk-in transactions with filtering
func (s *B2CService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.B2CTransaction], error) {
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

// ListHoldings lists a walk-in customer's cylinder holdings
func (s *B2CService) ListHoldings(ctx context.Context, customerID uuid.UUID) ([]entity.CylinderHolding, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return s.holdingRepo.ListByCustomer(ctx, customerID)
}

// VoidTransaction reverses a walk-in transaction's balance effect. Deposit
// side effects are not unwound automatically; holdings opened or closed by
// the entry need a correcting entry.
func (s *B2CService) VoidTransaction(ctx context.Context, id uuid.UUID) (*entity.B2CTransaction, error) {
	var voided *entity.B2CTransaction
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

		customer.LedgerBalance = customer.LedgerBalance.Sub(ledger.Delta(tx.Type, tx.TotalAmount))
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

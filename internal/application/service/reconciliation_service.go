package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/ledger"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/repository"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/apperror"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/pagination"
)

// auditPageSize bounds how many customers are loaded per replay batch.
const auditPageSize = 100

// ReconciliationService replays ledgers from first principles. The stored
// aggregate on the customer row is a cache; the transaction stream is the
// truth, and this service reports when the two disagree.
type ReconciliationService struct {
	customerRepo    repository.CustomerRepository
	txRepo          repository.TransactionRepository
	b2cCustomerRepo repository.B2CCustomerRepository
	b2cTxRepo       repository.B2CTransactionRepository
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
	b2cCustomerRepo repository.B2CCustomerRepository,
	b2cTxRepo repository.B2CTransactionRepository,
) *ReconciliationService {
	return &ReconciliationService{
		customerRepo:    customerRepo,
		txRepo:          txRepo,
		b2cCustomerRepo: b2cCustomerRepo,
		b2cTxRepo:       b2cTxRepo,
	}
}

// Statement is a customer ledger with running balances annotated.
type Statement struct {
	Customer        *entity.Customer     `json:"customer"`
	Transactions    []entity.Transaction `json:"transactions"`
	ReplayedBalance decimal.Decimal      `json:"replayed_balance"`
	StoredBalance   decimal.Decimal      `json:"stored_balance"`
	Drift           decimal.Decimal      `json:"drift"`
}

// CustomerStatement replays a B2B customer's full ledger and annotates each
// entry with the balance after it.
func (s *ReconciliationService) CustomerStatement(ctx context.Context, customerID uuid.UUID) (*Statement, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	txs, err := s.txRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	annotated := ledger.RunningBalance(txs)
	replayed := ledger.NetChange(txs)
	drift := customer.LedgerBalance.Sub(replayed)
	if !drift.IsZero() {
		slog.Warn("ledger drift detected",
			"customer_id", customerID,
			"stored", customer.LedgerBalance,
			"replayed", replayed,
			"drift", drift)
	}

	return &Statement{
		Customer:        customer,
		Transactions:    annotated,
		ReplayedBalance: replayed,
		StoredBalance:   customer.LedgerBalance,
		Drift:           drift,
	}, nil
}

// B2CStatement mirrors CustomerStatement for walk-in customers.
type B2CStatement struct {
	Customer        *entity.B2CCustomer     `json:"customer"`
	Transactions    []entity.B2CTransaction `json:"transactions"`
	ReplayedBalance decimal.Decimal         `json:"replayed_balance"`
	StoredBalance   decimal.Decimal         `json:"stored_balance"`
	Drift           decimal.Decimal         `json:"drift"`
}

// B2CCustomerStatement replays a walk-in customer's ledger.
func (s *ReconciliationService) B2CCustomerStatement(ctx context.Context, customerID uuid.UUID) (*B2CStatement, error) {
	customer, err := s.b2cCustomerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	txs, err := s.b2cTxRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	annotated := ledger.RunningBalanceB2C(txs)
	replayed := ledger.NetChangeB2C(txs)
	drift := customer.LedgerBalance.Sub(replayed)
	if !drift.IsZero() {
		slog.Warn("ledger drift detected",
			"customer_id", customerID,
			"stored", customer.LedgerBalance,
			"replayed", replayed,
			"drift", drift)
	}

	return &B2CStatement{
		Customer:        customer,
		Transactions:    annotated,
		ReplayedBalance: replayed,
		StoredBalance:   customer.LedgerBalance,
		Drift:           drift,
	}, nil
}

// AuditEntry reports one customer whose stored balance disagrees with the
// replayed transaction stream.
type AuditEntry struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	Name       string          `json:"name"`
	Stored     decimal.Decimal `json:"stored"`
	Replayed   decimal.Decimal `json:"replayed"`
	Drift      decimal.Decimal `json:"drift"`
}

// AuditBalances replays every B2B customer ledger and returns the ones
// whose cached balance has drifted.
func (s *ReconciliationService) AuditBalances(ctx context.Context) ([]AuditEntry, error) {
	var drifted []AuditEntry

	page := 1
	for {
		params := &pagination.PaginationParams{Page: page, PerPage: auditPageSize}
		customers, total, err := s.customerRepo.List(ctx, params, "")
		if err != nil {
			return nil, err
		}
		for i := range customers {
			txs, err := s.txRepo.ListByCustomer(ctx, customers[i].ID)
			if err != nil {
				return nil, err
			}
			replayed := ledger.NetChange(txs)
			drift := customers[i].LedgerBalance.Sub(replayed)
			if !drift.IsZero() {
				drifted = append(drifted, AuditEntry{
					CustomerID: customers[i].ID,
					Name:       customers[i].Name,
					Stored:     customers[i].LedgerBalance,
					Replayed:   replayed,
					Drift:      drift,
				})
			}
		}
		if int64(page*auditPageSize) >= total {
			break
		}
		page++
	}

	return drifted, nil
}

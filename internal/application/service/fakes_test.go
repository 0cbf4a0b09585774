package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/repository"
	"github.com/amintahir16/lpg-gas-app-sub001/pkg/pagination"
)

// In-memory repository fakes. They run every call outside any real
// database, so WithinTransaction just invokes the function.

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Phone != nil && *c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, params *pagination.PaginationParams, _ string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, int64(len(out)), nil
}

type fakeTransactionRepo struct {
	txs map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txs: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	cp := *tx
	r.txs[tx.ID] = &cp
	return nil
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	tx, ok := r.txs[id]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (r *fakeTransactionRepo) GetByBillNumber(_ context.Context, bill string) (*entity.Transaction, error) {
	for _, tx := range r.txs {
		if tx.BillNumber == bill {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) ExistsBillNumber(_ context.Context, bill string) (bool, error) {
	for _, tx := range r.txs {
		if tx.BillNumber == bill {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	cp := *tx
	r.txs[tx.ID] = &cp
	return nil
}

func (r *fakeTransactionRepo) List(_ context.Context, params *repository.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var out []entity.Transaction
	for _, tx := range r.txs {
		if params.CustomerID != nil && tx.CustomerID != *params.CustomerID {
			continue
		}
		if !params.IncludeVoided && tx.Voided {
			continue
		}
		out = append(out, *tx)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTransactionRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, tx := range r.txs {
		if tx.CustomerID == customerID {
			out = append(out, *tx)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].OccurredAt() < out[b].OccurredAt() })
	return out, nil
}

type fakeB2CCustomerRepo struct {
	customers map[uuid.UUID]*entity.B2CCustomer
}

func newFakeB2CCustomerRepo() *fakeB2CCustomerRepo {
	return &fakeB2CCustomerRepo{customers: make(map[uuid.UUID]*entity.B2CCustomer)}
}

func (r *fakeB2CCustomerRepo) Create(_ context.Context, c *entity.B2CCustomer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeB2CCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.B2CCustomer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeB2CCustomerRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.B2CCustomer, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeB2CCustomerRepo) GetByPhone(_ context.Context, phone string) (*entity.B2CCustomer, error) {
	for _, c := range r.customers {
		if c.Phone != nil && *c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeB2CCustomerRepo) Update(_ context.Context, c *entity.B2CCustomer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeB2CCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeB2CCustomerRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.B2CCustomer, int64, error) {
	var out []entity.B2CCustomer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeB2CTransactionRepo struct {
	txs map[uuid.UUID]*entity.B2CTransaction
}

func newFakeB2CTransactionRepo() *fakeB2CTransactionRepo {
	return &fakeB2CTransactionRepo{txs: make(map[uuid.UUID]*entity.B2CTransaction)}
}

func (r *fakeB2CTransactionRepo) Create(_ context.Context, tx *entity.B2CTransaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	cp := *tx
	r.txs[tx.ID] = &cp
	return nil
}

func (r *fakeB2CTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.B2CTransaction, error) {
	tx, ok := r.txs[id]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (r *fakeB2CTransactionRepo) GetByBillNumber(_ context.Context, bill string) (*entity.B2CTransaction, error) {
	for _, tx := range r.txs {
		if tx.BillNumber == bill {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeB2CTransactionRepo) ExistsBillNumber(_ context.Context, bill string) (bool, error) {
	for _, tx := range r.txs {
		if tx.BillNumber == bill {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeB2CTransactionRepo) Update(_ context.Context, tx *entity.B2CTransaction) error {
	cp := *tx
	r.txs[tx.ID] = &cp
	return nil
}

func (r *fakeB2CTransactionRepo) List(_ context.Context, params *repository.TransactionFilterParams) ([]entity.B2CTransaction, int64, error) {
	var out []entity.B2CTransaction
	for _, tx := range r.txs {
		if params.CustomerID != nil && tx.CustomerID != *params.CustomerID {
			continue
		}
		if !params.IncludeVoided && tx.Voided {
			continue
		}
		out = append(out, *tx)
	}
	return out, int64(len(out)), nil
}

func (r *fakeB2CTransactionRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]entity.B2CTransaction, error) {
	var out []entity.B2CTransaction
	for _, tx := range r.txs {
		if tx.CustomerID == customerID {
			out = append(out, *tx)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].OccurredAt() < out[b].OccurredAt() })
	return out, nil
}

type fakeHoldingRepo struct {
	holdings map[uuid.UUID]*entity.CylinderHolding
	order    []uuid.UUID
}

func newFakeHoldingRepo() *fakeHoldingRepo {
	return &fakeHoldingRepo{holdings: make(map[uuid.UUID]*entity.CylinderHolding)}
}

func (r *fakeHoldingRepo) Create(_ context.Context, h *entity.CylinderHolding) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	cp := *h
	r.holdings[h.ID] = &cp
	r.order = append(r.order, h.ID)
	return nil
}

func (r *fakeHoldingRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.CylinderHolding, error) {
	h, ok := r.holdings[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r *fakeHoldingRepo) Update(_ context.Context, h *entity.CylinderHolding) error {
	cp := *h
	r.holdings[h.ID] = &cp
	return nil
}

func (r *fakeHoldingRepo) ListOpenByCustomerAndType(_ context.Context, customerID uuid.UUID, t enum.CylinderType) ([]entity.CylinderHolding, error) {
	var out []entity.CylinderHolding
	for _, id := range r.order {
		h := r.holdings[id]
		if h.CustomerID == customerID && h.CylinderType == t && !h.IsReturned {
			out = append(out, *h)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].IssueDate.Before(out[b].IssueDate) })
	return out, nil
}

func (r *fakeHoldingRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]entity.CylinderHolding, error) {
	var out []entity.CylinderHolding
	for _, id := range r.order {
		h := r.holdings[id]
		if h.CustomerID == customerID {
			out = append(out, *h)
		}
	}
	return out, nil
}

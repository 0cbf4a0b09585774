package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/entity"
)

// RunningBalance annotates each transaction with the customer balance as it
// stood immediately after that transaction, regardless of the input order.
// The fold walks (date, time) ascending from zero and skips voided entries,
// which keep the balance they inherited. The input slice is not mutated;
// the returned slice preserves the input ordering so reverse-chronological
// statements keep their layout. Replaying is pure: the last chronological
// balance must equal the stored Customer.LedgerBalance or the ledger has
// drifted.
func RunningBalance(txs []entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, len(txs))
	copy(out, txs)

	annotate(len(out),
		func(i int) string { return out[i].OccurredAt() },
		func(i int) bool { return out[i].Voided },
		func(i int) decimal.Decimal { return Delta(out[i].Type, out[i].TotalAmount) },
		func(i int, bal decimal.Decimal) { out[i].RunningBalance = bal },
	)
	return out
}

// RunningBalanceB2C is RunningBalance for residential transactions.
func RunningBalanceB2C(txs []entity.B2CTransaction) []entity.B2CTransaction {
	out := make([]entity.B2CTransaction, len(txs))
	copy(out, txs)

	annotate(len(out),
		func(i int) string { return out[i].OccurredAt() },
		func(i int) bool { return out[i].Voided },
		func(i int) decimal.Decimal { return Delta(out[i].Type, out[i].TotalAmount) },
		func(i int, bal decimal.Decimal) { out[i].RunningBalance = bal },
	)
	return out
}

func annotate(n int, key func(int) string, voided func(int) bool, delta func(int) decimal.Decimal, set func(int, decimal.Decimal)) {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return key(order[a]) < key(order[b])
	})

	balance := decimal.Zero
	for _, i := range order {
		if !voided(i) {
			balance = balance.Add(delta(i))
		}
		set(i, balance)
	}
}

// NetChange sums the ledger deltas of the non-voided transactions. By the
// conservation property this equals the balance movement across the set.
func NetChange(txs []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Voided {
			continue
		}
		total = total.Add(Delta(tx.Type, tx.TotalAmount))
	}
	return total
}

// NetChangeB2C is NetChange for residential transactions.
func NetChangeB2C(txs []entity.B2CTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Voided {
			continue
		}
		total = total.Add(Delta(tx.Type, tx.TotalAmount))
	}
	return total
}

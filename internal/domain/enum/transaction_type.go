package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionType is the closed set of ledger transaction kinds. The ledger
// delta and due-count delta for each kind live in internal/domain/ledger;
// nothing else may derive balance effects from this type.
type TransactionType int

const (
	TransactionSale TransactionType = iota
	TransactionPayment
	TransactionBuyback
	TransactionReturnEmpty
	TransactionAdjustment
	TransactionCreditNote
)

var transactionTypeNames = [...]string{"SALE", "PAYMENT", "BUYBACK", "RETURN_EMPTY", "ADJUSTMENT", "CREDIT_NOTE"}

// AllTransactionTypes lists every valid transaction type.
var AllTransactionTypes = []TransactionType{
	TransactionSale,
	TransactionPayment,
	TransactionBuyback,
	TransactionReturnEmpty,
	TransactionAdjustment,
	TransactionCreditNote,
}

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return int(t) >= 0 && int(t) < len(transactionTypeNames)
}

func (t TransactionType) String() string {
	if !t.Valid() {
		return "UNKNOWN"
	}
	return transactionTypeNames[t]
}

// ParseTransactionType converts a wire name to a TransactionType.
func ParseTransactionType(s string) (TransactionType, bool) {
	for i, name := range transactionTypeNames {
		if name == s {
			return TransactionType(i), true
		}
	}
	return 0, false
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TransactionType(i)
		return nil
	}
	if parsed, ok := ParseTransactionType(str); ok {
		*t = parsed
	}
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TransactionType) Scan(value interface{}) error {
	if value == nil {
		*t = TransactionSale
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TransactionType(v)
	case int:
		*t = TransactionType(v)
	}
	return nil
}

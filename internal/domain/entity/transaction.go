package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
)

// Transaction is an immutable B2B ledger entry. Once posted, only the
// Voided flag may change, and voiding reverses the ledger effect exactly.
type Transaction struct {
	ID               uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"customer_id"`
	Type             enum.TransactionType `gorm:"not null;index" json:"type"`
	BillNumber       string               `gorm:"size:100;unique;not null" json:"bill_number"`
	Date             time.Time            `gorm:"type:date;not null;index" json:"date"`
	Time             string               `gorm:"type:time;not null" json:"time"`
	TotalAmount      decimal.Decimal      `gorm:"type:numeric(14,2);not null;default:0" json:"total_amount"`
	PaymentReference *string              `gorm:"size:255" json:"payment_reference,omitempty"`
	Notes            *string              `gorm:"type:text" json:"notes,omitempty"`
	Voided           bool                 `gorm:"not null;default:false;index" json:"voided"`
	VoidedAt         *time.Time           `json:"voided_at,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`

	// Set by the reconciliation reporter only, never stored.
	RunningBalance decimal.Decimal `gorm:"-" json:"running_balance,omitempty"`

	// Relationships
	Customer Customer   `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []LineItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// OccurredAt combines the date and time columns into a sortable key.
func (t *Transaction) OccurredAt() string {
	return t.Date.Format("2006-01-02") + " " + t.Time
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// LineItem is one line of a transaction. The buyback fields are populated
// only on BUYBACK transactions and are frozen at posting time because the
// buyback rate and plant price drift afterwards.
type LineItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductName   string          `gorm:"size:255;not null" json:"product_name"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	PricePerItem  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"price_per_item"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"total_price"`
	CylinderType  *enum.CylinderType `json:"cylinder_type,omitempty"`

	ReturnedCondition   *enum.ReturnedCondition `json:"returned_condition,omitempty"`
	RemainingKg         *decimal.Decimal        `gorm:"type:numeric(8,2)" json:"remaining_kg,omitempty"`
	OriginalSoldPrice   *decimal.Decimal        `gorm:"type:numeric(14,2)" json:"original_sold_price,omitempty"`
	BuybackRate         *decimal.Decimal        `gorm:"type:numeric(5,2)" json:"buyback_rate,omitempty"`
	BuybackPricePerItem *decimal.Decimal        `gorm:"type:numeric(14,2)" json:"buyback_price_per_item,omitempty"`
	BuybackTotal        *decimal.Decimal        `gorm:"type:numeric(14,2)" json:"buyback_total,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Transaction Transaction `gorm:"foreignKey:TransactionID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}

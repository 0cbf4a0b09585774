package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
)

// B2CCustomer represents a residential customer. DepositsHeld is the sum of
// security amounts across the customer's open cylinder holdings and, like
// the B2B aggregates, is written only by the B2C ledger flow.
type B2CCustomer struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Phone         *string         `gorm:"size:50" json:"phone,omitempty"`
	Address       *string         `gorm:"type:text" json:"address,omitempty"`
	LedgerBalance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"ledger_balance"`
	DepositsHeld  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"deposits_held"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Transactions []B2CTransaction  `gorm:"foreignKey:CustomerID" json:"-"`
	Holdings     []CylinderHolding `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new B2C customer
func (c *B2CCustomer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the B2CCustomer model
func (B2CCustomer) TableName() string {
	return "b2c_customers"
}

// B2CTransaction mirrors the B2B transaction header for residential sales,
// with security-deposit line items in place of buyback ones.
type B2CTransaction struct {
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

	RunningBalance decimal.Decimal `gorm:"-" json:"running_balance,omitempty"`

	// Relationships
	Customer B2CCustomer   `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []B2CLineItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// OccurredAt combines the date and time columns into a sortable key.
func (t *B2CTransaction) OccurredAt() string {
	return t.Date.Format("2006-01-02") + " " + t.Time
}

// BeforeCreate generates a UUID before creating a new B2C transaction
func (t *B2CTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the B2CTransaction model
func (B2CTransaction) TableName() string {
	return "b2c_transactions"
}

// B2CLineItem is one line of a B2C transaction. Security-deposit lines set
// IsSecurity; IsReturn distinguishes a deposit refund from a new deposit.
type B2CLineItem struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID          `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductName   string             `gorm:"size:255;not null" json:"product_name"`
	Quantity      int                `gorm:"not null" json:"quantity"`
	PricePerItem  decimal.Decimal    `gorm:"type:numeric(14,2);not null;default:0" json:"price_per_item"`
	TotalPrice    decimal.Decimal    `gorm:"type:numeric(14,2);not null;default:0" json:"total_price"`
	CylinderType  *enum.CylinderType `json:"cylinder_type,omitempty"`

	IsSecurity    bool             `gorm:"not null;default:false" json:"is_security"`
	IsReturn      bool             `gorm:"not null;default:false" json:"is_return"`
	DeductionRate *decimal.Decimal `gorm:"type:numeric(5,2)" json:"deduction_rate,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Transaction B2CTransaction `gorm:"foreignKey:TransactionID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new B2C line item
func (li *B2CLineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the B2CLineItem model
func (B2CLineItem) TableName() string {
	return "b2c_line_items"
}

// CylinderHolding is one outstanding deposited cylinder batch. Created when
// a security deposit is taken, closed oldest-first when deposits are
// returned; ReturnDeduction records the amount withheld at closure.
type CylinderHolding struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	CylinderType   enum.CylinderType `gorm:"not null;index" json:"cylinder_type"`
	Quantity       int               `gorm:"not null" json:"quantity"`
	SecurityAmount decimal.Decimal   `gorm:"type:numeric(14,2);not null" json:"security_amount"`
	IssueDate      time.Time         `gorm:"type:date;not null;index" json:"issue_date"`
	IsReturned     bool              `gorm:"not null;default:false;index" json:"is_returned"`
	ReturnDate     *time.Time        `gorm:"type:date" json:"return_date,omitempty"`
	ReturnDeduction *decimal.Decimal `gorm:"type:numeric(14,2)" json:"return_deduction,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	// Relationships
	Customer B2CCustomer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cylinder holding
func (h *CylinderHolding) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CylinderHolding model
func (CylinderHolding) TableName() string {
	return "cylinder_holdings"
}

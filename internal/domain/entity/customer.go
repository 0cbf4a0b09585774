package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
)

// Customer represents a B2B customer (hotels, restaurants, dealers).
// LedgerBalance and the due counters are aggregates over the customer's
// non-voided transactions; only the ledger service writes them.
type Customer struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name             string          `gorm:"size:255;not null" json:"name"`
	ContactPerson    *string         `gorm:"size:255" json:"contact_person,omitempty"`
	Phone            *string         `gorm:"size:50" json:"phone,omitempty"`
	Email            *string         `gorm:"size:255" json:"email,omitempty"`
	Address          *string         `gorm:"type:text" json:"address,omitempty"`
	CreditLimit      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"credit_limit"`
	PaymentTermsDays int             `gorm:"not null;default:30" json:"payment_terms_days"`

	// Positive balance means the customer owes money.
	LedgerBalance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"ledger_balance"`
	DomesticDue   int             `gorm:"not null;default:0" json:"domestic_due"`
	StandardDue   int             `gorm:"not null;default:0" json:"standard_due"`
	CommercialDue int             `gorm:"not null;default:0" json:"commercial_due"`

	MarginCategoryID *uuid.UUID `gorm:"type:uuid;index" json:"margin_category_id,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	MarginCategory *MarginCategory `gorm:"foreignKey:MarginCategoryID" json:"margin_category,omitempty"`
	Transactions   []Transaction   `gorm:"foreignKey:CustomerID" json:"-"`
}

// Due returns the outstanding cylinder count for a size class.
func (c *Customer) Due(t enum.CylinderType) int {
	switch t {
	case enum.CylinderDomestic:
		return c.DomesticDue
	case enum.CylinderStandard:
		return c.StandardDue
	case enum.CylinderCommercial:
		return c.CommercialDue
	}
	return 0
}

// SetDue overwrites the outstanding cylinder count for a size class.
func (c *Customer) SetDue(t enum.CylinderType, count int) {
	switch t {
	case enum.CylinderDomestic:
		c.DomesticDue = count
	case enum.CylinderStandard:
		c.StandardDue = count
	case enum.CylinderCommercial:
		c.CommercialDue = count
	}
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

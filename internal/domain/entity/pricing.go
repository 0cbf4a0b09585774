package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlantPrice is the dated wholesale price for the 11.8kg reference
// cylinder. One row per calendar day; setting the price for a day again
// overwrites the existing row.
type PlantPrice struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date       time.Time       `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Price118Kg decimal.Decimal `gorm:"column:price_118_kg;type:numeric(14,2);not null" json:"price_118kg"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new plant price
func (p *PlantPrice) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PlantPrice model
func (PlantPrice) TableName() string {
	return "plant_prices"
}

// MarginCategory is a per-kg margin applied on top of the derived plant
// price for a customer segment.
type MarginCategory struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"size:255;unique;not null" json:"name"`
	MarginPerKg decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"margin_per_kg"`
	Active      bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new margin category
func (m *MarginCategory) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MarginCategory model
func (MarginCategory) TableName() string {
	return "margin_categories"
}

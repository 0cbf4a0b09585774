package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amintahir16/lpg-gas-app-sub001/internal/domain/enum"
)

// Cylinder is a physical unit. At most one of StoreID, VehicleID and
// CustomerID is set; WITH_CUSTOMER status implies CustomerID and nothing
// else. The state tracker is the only writer of Status and the location
// fields.
type Cylinder struct {
	ID           uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Code         string              `gorm:"size:100;unique;not null" json:"code"`
	CylinderType enum.CylinderType   `gorm:"not null;index" json:"cylinder_type"`
	Status       enum.CylinderStatus `gorm:"not null;index" json:"status"`

	StoreID    *uuid.UUID `gorm:"type:uuid;index" json:"store_id,omitempty"`
	VehicleID  *uuid.UUID `gorm:"type:uuid;index" json:"vehicle_id,omitempty"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`

	// Gas left in a PARTIAL cylinder after a buyback.
	RemainingKg *decimal.Decimal `gorm:"type:numeric(8,2)" json:"remaining_kg,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cylinder
func (c *Cylinder) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cylinder model
func (Cylinder) TableName() string {
	return "cylinders"
}

// Store is a physical depot location cylinders are kept at.
type Store struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;unique;not null" json:"name"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new store
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Store model
func (Store) TableName() string {
	return "stores"
}

// Vehicle is a delivery truck cylinders travel on.
type Vehicle struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Registration string         `gorm:"size:50;unique;not null" json:"registration"`
	DriverName   *string        `gorm:"size:255" json:"driver_name,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vehicle
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}

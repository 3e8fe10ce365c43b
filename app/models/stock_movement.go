package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovementType classifies a stock movement.
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
	MovementSale       MovementType = "sale"
)

var movementLabels = map[MovementType]string{
	MovementIn:         "Stock In",
	MovementOut:        "Stock Out",
	MovementAdjustment: "Adjustment",
	MovementSale:       "Sale",
}

// Label returns the human-readable form, e.g. "Stock In".
func (t MovementType) Label() string {
	if label, ok := movementLabels[t]; ok {
		return label
	}
	return string(t)
}

// StockMovement is an audit record of a change in on-hand quantity.
// Quantity is signed: negative for outgoing stock. The record itself never
// mutates Product.Stock.
type StockMovement struct {
	ID        string       `gorm:"type:varchar(36);primaryKey"     json:"id"`
	ProductID string       `gorm:"type:varchar(36);not null;index" json:"product_id"`
	Product   Product      `gorm:"constraint:OnDelete:CASCADE"     json:"-"`
	Type      MovementType `gorm:"column:movement_type;size:20;not null" json:"movement_type"`
	Quantity  int          `gorm:"not null"                        json:"quantity"`
	Reason    string       `gorm:"size:200"                        json:"reason"`
	CreatedAt time.Time    `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key.
func (m *StockMovement) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

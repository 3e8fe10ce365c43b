package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is one completed sales transaction. UnitPrice snapshots the product
// price at sale time; TotalPrice is always recomputed at write time.
//
// A Sale never touches Product.Stock itself; the decrement is an explicit
// step of InventoryService.RecordSale so the coupling stays visible.
type Sale struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"        json:"id"`
	ProductID  string    `gorm:"type:varchar(36);not null;index"    json:"product_id"`
	Product    Product   `gorm:"constraint:OnDelete:CASCADE"        json:"-"`
	Quantity   int       `gorm:"not null"                           json:"quantity"`
	UnitPrice  float64   `gorm:"not null"                           json:"unit_price"`
	TotalPrice float64   `gorm:"not null"                           json:"total_price"`
	SaleDate   time.Time `gorm:"not null;index"                     json:"sale_date"`
}

// BeforeCreate assigns a UUID, defaults SaleDate to now, and recomputes
// TotalPrice from the snapshot price and quantity.
func (s *Sale) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.SaleDate.IsZero() {
		s.SaleDate = time.Now()
	}
	s.TotalPrice = s.UnitPrice * float64(s.Quantity)
	return nil
}

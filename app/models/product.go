package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is the fixed product category enumeration.
type Category string

const (
	CategoryFoodBeverages  Category = "food_beverages"
	CategoryClothingSports Category = "clothing_sports"
	CategoryArtsCrafts     Category = "arts_crafts"
	CategoryGardenPlants   Category = "garden_plants"
	CategoryHomeLiving     Category = "home_living"
	CategoryElectronics    Category = "electronics"
)

var categoryLabels = map[Category]string{
	CategoryFoodBeverages:  "Food & Beverages",
	CategoryClothingSports: "Clothing & Sports",
	CategoryArtsCrafts:     "Arts & Crafts",
	CategoryGardenPlants:   "Garden & Plants",
	CategoryHomeLiving:     "Home & Living",
	CategoryElectronics:    "Electronics",
}

// Categories returns the enumeration in display order.
func Categories() []Category {
	return []Category{
		CategoryFoodBeverages,
		CategoryClothingSports,
		CategoryArtsCrafts,
		CategoryGardenPlants,
		CategoryHomeLiving,
		CategoryElectronics,
	}
}

// ValidCategory reports whether s is a known category code.
func ValidCategory(s string) bool {
	_, ok := categoryLabels[Category(s)]
	return ok
}

// Label returns the human-readable form, e.g. "Food & Beverages".
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Stock status values derived from stock vs low-stock threshold.
const (
	StockStatusOut = "out_of_stock"
	StockStatusLow = "low_stock"
	StockStatusIn  = "in_stock"
)

// Product is a catalogue item with a running on-hand stock count.
type Product struct {
	ID                string   `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name              string   `gorm:"size:200;not null;index"     json:"name"`
	SKU               string   `gorm:"size:50;uniqueIndex;not null" json:"sku"`
	Description       string   `gorm:"type:text"                   json:"description"`
	Category          Category `gorm:"size:20;not null;index"      json:"category"`
	Price             float64  `gorm:"not null"                    json:"price"`
	Stock             int      `gorm:"not null;default:0"          json:"stock"`
	LowStockThreshold int      `gorm:"not null;default:10"         json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Sales          []Sale          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	StockMovements []StockMovement `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a UUID primary key.
func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsLowStock reports stock at or below the reorder threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// IsOutOfStock reports zero stock on hand.
func (p Product) IsOutOfStock() bool {
	return p.Stock == 0
}

// StockStatus classifies the product; out-of-stock wins over low-stock.
// Value receiver so templates can call it on ranged slice elements.
func (p Product) StockStatus() string {
	switch {
	case p.IsOutOfStock():
		return StockStatusOut
	case p.IsLowStock():
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// TotalValue is the inventory value of the on-hand stock.
func (p Product) TotalValue() float64 {
	return p.Price * float64(p.Stock)
}

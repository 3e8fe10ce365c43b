package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockStatus(t *testing.T) {
	p := Product{Stock: 45, LowStockThreshold: 10}
	assert.Equal(t, StockStatusIn, p.StockStatus())

	p.Stock = 10
	assert.Equal(t, StockStatusLow, p.StockStatus())

	p.Stock = 5
	assert.Equal(t, StockStatusLow, p.StockStatus())

	// Out-of-stock wins even though 0 <= threshold.
	p.Stock = 0
	assert.Equal(t, StockStatusOut, p.StockStatus())
}

func TestStockStatusZeroThreshold(t *testing.T) {
	p := Product{Stock: 3, LowStockThreshold: 0}
	assert.Equal(t, StockStatusIn, p.StockStatus())

	p.Stock = 0
	assert.Equal(t, StockStatusOut, p.StockStatus())
}

func TestTotalValue(t *testing.T) {
	p := Product{Price: 34.99, Stock: 3}
	assert.InDelta(t, 104.97, p.TotalValue(), 0.001)
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 6)

	for _, c := range cats {
		assert.True(t, ValidCategory(string(c)))
		assert.NotEmpty(t, c.Label())
	}

	assert.False(t, ValidCategory("toys"))
	assert.Equal(t, "Food & Beverages", CategoryFoodBeverages.Label())
}

func TestMovementTypeLabel(t *testing.T) {
	assert.Equal(t, "Stock In", MovementIn.Label())
	assert.Equal(t, "Sale", MovementSale.Label())
}

package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	tea := createProduct(t, db, models.Product{Name: "Tea", SKU: "FB-1", Category: models.CategoryFoodBeverages, Price: 30, Stock: 100})
	lamp := createProduct(t, db, models.Product{Name: "Lamp", SKU: "EL-1", Category: models.CategoryElectronics, Price: 300, Stock: 100})
	createProduct(t, db, models.Product{Name: "Unsold", SKU: "GP-1", Category: models.CategoryGardenPlants, Price: 50, Stock: 10})

	now := time.Now()
	createSale(t, db, tea.ID, 4, 30, now)
	createSale(t, db, lamp.ID, 1, 300, now)
	createSale(t, db, lamp.ID, 2, 300, now)

	rows, err := svc.ByCategory()
	require.NoError(t, err)
	require.Len(t, rows, 2) // unsold category absent

	// Highest revenue first.
	assert.Equal(t, models.CategoryElectronics, rows[0].Category)
	assert.Equal(t, 900.0, rows[0].TotalSales)
	assert.Equal(t, int64(3), rows[0].TotalQuantity)

	assert.Equal(t, models.CategoryFoodBeverages, rows[1].Category)
	assert.Equal(t, 120.0, rows[1].TotalSales)
}

func TestTopProductsLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	now := time.Now()
	for i := 1; i <= 13; i++ {
		sku := fmt.Sprintf("A-%02d", i)
		p := createProduct(t, db, models.Product{
			Name: "P" + sku, SKU: sku, Category: models.CategoryArtsCrafts, Price: float64(10 * i), Stock: 10,
		})
		createSale(t, db, p.ID, 1, p.Price, now)
	}

	rows, err := svc.TopProducts()
	require.NoError(t, err)
	require.Len(t, rows, 10)

	// Ranked by revenue, so the most expensive single sale leads.
	assert.Equal(t, "A-13", rows[0].SKU)
	assert.Equal(t, 130.0, rows[0].TotalSales)
	assert.Equal(t, "A-04", rows[9].SKU)
}

func TestMonthly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	p := createProduct(t, db, models.Product{Name: "P", SKU: "M-1", Category: models.CategoryHomeLiving, Price: 50, Stock: 100})

	// Anchor on the first of the month so AddDate never normalizes across
	// a month boundary.
	now := time.Now()
	anchor := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, time.UTC)
	twoMonthsAgo := anchor.AddDate(0, -2, 0)
	lastMonth := anchor.AddDate(0, -1, 0)

	createSale(t, db, p.ID, 1, 50, twoMonthsAgo)
	createSale(t, db, p.ID, 2, 50, lastMonth)
	createSale(t, db, p.ID, 3, 50, lastMonth)
	// The window is trailing 365 days, not twelve calendar months.
	createSale(t, db, p.ID, 9, 50, now.AddDate(0, 0, -366))

	rows, err := svc.Monthly()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Chronological order, oldest bucket first.
	assert.Equal(t, twoMonthsAgo.Format("2006-01"), rows[0].Month)
	assert.Equal(t, 50.0, rows[0].TotalSales)
	assert.Equal(t, int64(1), rows[0].TotalQuantity)

	assert.Equal(t, lastMonth.Format("2006-01"), rows[1].Month)
	assert.Equal(t, 250.0, rows[1].TotalSales)
	assert.Equal(t, int64(5), rows[1].TotalQuantity)
}

package services

import (
	"fmt"
	"testing"

	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := models.Product{
		Name:              "Rooibos Tea",
		SKU:               "FB-0001",
		Category:          models.CategoryFoodBeverages,
		Price:             34.99,
		Stock:             20,
		LowStockThreshold: 10,
	}
	require.NoError(t, svc.CreateProduct(ctx, &product))
	assert.NotEmpty(t, product.ID)

	// Opening stock is booked as an inbound movement.
	var movements []models.StockMovement
	require.NoError(t, db.Where("product_id = ?", product.ID).Find(&movements).Error)
	require.Len(t, movements, 1)
	assert.Equal(t, models.MovementIn, movements[0].Type)
	assert.Equal(t, 20, movements[0].Quantity)
	assert.Equal(t, "Initial stock", movements[0].Reason)
}

func TestCreateProductZeroStockNoMovement(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := models.Product{Name: "Empty", SKU: "X-1", Category: models.CategoryElectronics, Price: 1}
	require.NoError(t, svc.CreateProduct(ctx, &product))

	var count int64
	require.NoError(t, db.Model(&models.StockMovement{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	createProduct(t, db, models.Product{Name: "A", SKU: "DUP-1", Category: models.CategoryElectronics, Price: 1})

	err := svc.CreateProduct(ctx, &models.Product{Name: "B", SKU: "DUP-1", Category: models.CategoryElectronics, Price: 2})
	assert.ErrorIs(t, err, ErrSKUExists)
}

func TestCreateProductInvalidCategory(t *testing.T) {
	svc := NewInventoryService(newTestDB(t))

	err := svc.CreateProduct(ctx, &models.Product{Name: "A", SKU: "X-2", Category: "toys", Price: 1})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCreateProductInvalidPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	for _, price := range []float64{-5, 0, 0.009} {
		p := models.Product{Name: "A", SKU: "X-3", Category: models.CategoryElectronics, Price: price}
		assert.ErrorIs(t, svc.CreateProduct(ctx, &p), ErrInvalidPrice)
	}

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)

	// The floor itself is sellable.
	p := models.Product{Name: "A", SKU: "X-3", Category: models.CategoryElectronics, Price: 0.01}
	require.NoError(t, svc.CreateProduct(ctx, &p))
}

func TestRecordSale(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := createProduct(t, db, models.Product{
		Name: "Speaker", SKU: "EL-1", Category: models.CategoryElectronics, Price: 599, Stock: 12,
	})

	sale, err := svc.RecordSale(ctx, product.ID, 3)
	require.NoError(t, err)

	// Price is snapshotted and the total derived from it.
	assert.Equal(t, 599.0, sale.UnitPrice)
	assert.Equal(t, 1797.0, sale.TotalPrice)
	assert.False(t, sale.SaleDate.IsZero())

	var fresh models.Product
	require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
	assert.Equal(t, 9, fresh.Stock)

	// The audit trail records the sale as a negative movement.
	var movement models.StockMovement
	require.NoError(t, db.First(&movement, "product_id = ?", product.ID).Error)
	assert.Equal(t, models.MovementSale, movement.Type)
	assert.Equal(t, -3, movement.Quantity)
	assert.Equal(t, fmt.Sprintf("Sale #%s", sale.ID), movement.Reason)
}

func TestRecordSaleExactStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := createProduct(t, db, models.Product{
		Name: "Last Units", SKU: "EL-2", Category: models.CategoryElectronics, Price: 10, Stock: 5,
	})

	_, err := svc.RecordSale(ctx, product.ID, 5)
	require.NoError(t, err)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
	assert.Equal(t, 0, fresh.Stock)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := createProduct(t, db, models.Product{
		Name: "Scarce", SKU: "EL-3", Category: models.CategoryElectronics, Price: 10, Stock: 2,
	})

	_, err := svc.RecordSale(ctx, product.ID, 3)

	var insufficient ErrInsufficientStock
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)

	// Rolled back: no sale, no movement, stock untouched.
	var saleCount, movementCount int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&saleCount).Error)
	require.NoError(t, db.Model(&models.StockMovement{}).Count(&movementCount).Error)
	assert.Zero(t, saleCount)
	assert.Zero(t, movementCount)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
	assert.Equal(t, 2, fresh.Stock)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	svc := NewInventoryService(newTestDB(t))

	_, err := svc.RecordSale(ctx, "no-such-id", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRecordSaleInvalidQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := createProduct(t, db, models.Product{
		Name: "A", SKU: "EL-4", Category: models.CategoryElectronics, Price: 10, Stock: 5,
	})

	_, err := svc.RecordSale(ctx, product.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.RecordSale(ctx, product.ID, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAdjustStockInbound(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := createProduct(t, db, models.Product{
		Name: "A", SKU: "GP-1", Category: models.CategoryGardenPlants, Price: 10, Stock: 5,
	})

	updated, err := svc.AdjustStock(ctx, product.ID, 10, models.MovementIn, "Supplier delivery")
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Stock)

	var movement models.StockMovement
	require.NoError(t, db.First(&movement, "product_id = ?", product.ID).Error)
	assert.Equal(t, models.MovementIn, movement.Type)
	assert.Equal(t, 10, movement.Quantity)
	assert.Equal(t, "Supplier delivery", movement.Reason)
}

func TestAdjustStockOutbound(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := createProduct(t, db, models.Product{
		Name: "A", SKU: "GP-2", Category: models.CategoryGardenPlants, Price: 10, Stock: 5,
	})

	updated, err := svc.AdjustStock(ctx, product.ID, 2, models.MovementOut, "Damaged")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)

	var movement models.StockMovement
	require.NoError(t, db.First(&movement, "product_id = ?", product.ID).Error)
	assert.Equal(t, -2, movement.Quantity)
}

func TestAdjustStockOutboundBeyondStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := createProduct(t, db, models.Product{
		Name: "A", SKU: "GP-3", Category: models.CategoryGardenPlants, Price: 10, Stock: 4,
	})

	_, err := svc.AdjustStock(ctx, product.ID, 5, models.MovementOut, "Stocktake")

	var insufficient ErrInsufficientStock
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 4, insufficient.Available)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
	assert.Equal(t, 4, fresh.Stock)
}

func TestAdjustStockSignedAdjustment(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := createProduct(t, db, models.Product{
		Name: "A", SKU: "GP-4", Category: models.CategoryGardenPlants, Price: 10, Stock: 8,
	})

	updated, err := svc.AdjustStock(ctx, product.ID, -3, models.MovementAdjustment, "Stocktake correction")
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Stock)

	updated, err = svc.AdjustStock(ctx, product.ID, 2, models.MovementAdjustment, "Found in storeroom")
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Stock)
}

func TestAdjustStockInvalid(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := createProduct(t, db, models.Product{
		Name: "A", SKU: "GP-5", Category: models.CategoryGardenPlants, Price: 10, Stock: 8,
	})

	_, err := svc.AdjustStock(ctx, product.ID, -1, models.MovementIn, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AdjustStock(ctx, product.ID, 0, models.MovementAdjustment, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AdjustStock(ctx, product.ID, 1, "transfer", "")
	assert.ErrorIs(t, err, ErrInvalidMovement)

	_, err = svc.AdjustStock(ctx, "missing", 1, models.MovementIn, "")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestListSales(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	product := createProduct(t, db, models.Product{
		Name: "A", SKU: "HL-1", Category: models.CategoryHomeLiving, Price: 100, Stock: 50,
	})

	for i := 0; i < 25; i++ {
		_, err := svc.RecordSale(ctx, product.ID, 1)
		require.NoError(t, err)
	}

	sales, pagination, totalSales, totalQuantity, err := svc.ListSales(repositories.WindowAll, 1)
	require.NoError(t, err)
	assert.Len(t, sales, 20)
	assert.Equal(t, int64(25), pagination.Total)
	assert.Equal(t, 2, pagination.TotalPages)
	assert.Equal(t, 2500.0, totalSales)
	assert.Equal(t, int64(25), totalQuantity)

	// Preloaded product rides along for the listing page.
	assert.Equal(t, "A", sales[0].Product.Name)

	sales, _, _, _, err = svc.ListSales(repositories.WindowAll, 2)
	require.NoError(t, err)
	assert.Len(t, sales, 5)
}

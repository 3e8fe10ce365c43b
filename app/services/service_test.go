package services

import (
	"context"
	"testing"
	"time"

	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ctx = context.Background()

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Sale{},
		&models.StockMovement{},
	))

	return db
}

func createProduct(t *testing.T, db *gorm.DB, p models.Product) models.Product {
	t.Helper()
	require.NoError(t, db.Create(&p).Error)
	return p
}

func createSale(t *testing.T, db *gorm.DB, productID string, quantity int, unitPrice float64, saleDate time.Time) models.Sale {
	t.Helper()
	sale := models.Sale{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		SaleDate:  saleDate,
	}
	require.NoError(t, db.Create(&sale).Error)
	return sale
}

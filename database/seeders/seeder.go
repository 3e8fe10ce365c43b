// Package seeders populates a fresh database with demo data: a sample
// catalogue plus three months of synthetic sales history.
package seeders

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/pkg/logger"
	"gorm.io/gorm"
)

// Run seeds the catalogue and sales history. It refuses to run against a
// database that already has products, so it is safe to call twice.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Database already seeded, skipping.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedProducts(tx); err != nil {
			return err
		}
		if err := seedSales(tx); err != nil {
			return err
		}
		logger.Info("seed complete", "products", len(sampleProducts))
		return nil
	})
}

func seedProducts(tx *gorm.DB) error {
	for i := range sampleProducts {
		p := &sampleProducts[i]
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("seed product %s: %w", p.SKU, err)
		}
		if p.Stock > 0 {
			movement := models.StockMovement{
				ProductID: p.ID,
				Type:      models.MovementIn,
				Quantity:  p.Stock,
				Reason:    "Initial stock",
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// seedSales writes ninety days of backdated history. Stock was already booked
// in by seedProducts, so sold units are added on top first to keep the
// closing levels equal to the catalogue numbers.
func seedSales(tx *gorm.DB) error {
	rng := rand.New(rand.NewSource(20260301))
	now := time.Now()

	for day := 90; day >= 1; day-- {
		salesToday := rng.Intn(4)
		for i := 0; i < salesToday; i++ {
			product := &sampleProducts[rng.Intn(len(sampleProducts))]
			quantity := 1 + rng.Intn(3)

			saleDate := now.AddDate(0, 0, -day).
				Add(time.Duration(8+rng.Intn(9)) * time.Hour)

			restock := models.StockMovement{
				ProductID: product.ID,
				Type:      models.MovementIn,
				Quantity:  quantity,
				Reason:    "Seed restock",
				CreatedAt: saleDate.Add(-time.Hour),
			}
			if err := tx.Create(&restock).Error; err != nil {
				return err
			}

			sale := models.Sale{
				ProductID: product.ID,
				Quantity:  quantity,
				UnitPrice: product.Price,
				SaleDate:  saleDate,
			}
			if err := tx.Create(&sale).Error; err != nil {
				return err
			}

			movement := models.StockMovement{
				ProductID: product.ID,
				Type:      models.MovementSale,
				Quantity:  -quantity,
				Reason:    fmt.Sprintf("Sale #%s", sale.ID),
				CreatedAt: saleDate,
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

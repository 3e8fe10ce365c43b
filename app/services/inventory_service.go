package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/app/repositories"
	"github.com/shashiranjanraj/stocktracker/pkg/cache"
	"github.com/shashiranjanraj/stocktracker/pkg/metrics"
	"github.com/shashiranjanraj/stocktracker/pkg/orm"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned when a sale or outbound movement asks for
// more units than the product currently holds. Available is the stock level
// observed at decision time.
type ErrInsufficientStock struct {
	Available int
}

func (e ErrInsufficientStock) Error() string {
	return fmt.Sprintf("insufficient stock: only %d available", e.Available)
}

var (
	ErrSKUExists       = errors.New("sku already in use")
	ErrInvalidCategory = errors.New("unknown category")
	ErrInvalidPrice    = errors.New("price must be at least 0.01")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidMovement = errors.New("unknown movement type")
)

// minPrice is the smallest sellable unit price.
const minPrice = 0.01

// ProductDetail bundles everything the product page shows.
type ProductDetail struct {
	Product   models.Product
	Sales     []models.Sale
	Movements []models.StockMovement
}

// InventoryService owns product and stock state transitions. All writes that
// touch stock levels go through a transaction with a conditional decrement so
// concurrent sales can never drive stock negative.
type InventoryService struct {
	db        *gorm.DB
	products  *repositories.ProductRepository
	sales     *repositories.SaleRepository
	movements *repositories.StockMovementRepository
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{
		db:        db,
		products:  repositories.NewProductRepository(db),
		sales:     repositories.NewSaleRepository(db),
		movements: repositories.NewStockMovementRepository(db),
	}
}

// CreateProduct validates and persists a new product. A non-zero opening
// stock is recorded as an inbound movement so the audit trail starts at the
// real level.
func (s *InventoryService) CreateProduct(ctx context.Context, product *models.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	product.SKU = strings.TrimSpace(product.SKU)

	if !models.ValidCategory(string(product.Category)) {
		return ErrInvalidCategory
	}
	if product.Price < minPrice {
		return ErrInvalidPrice
	}

	exists, err := s.products.SKUExists(product.SKU)
	if err != nil {
		return err
	}
	if exists {
		return ErrSKUExists
	}

	return orm.Transaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if product.Stock > 0 {
			movement := models.StockMovement{
				ProductID: product.ID,
				Type:      models.MovementIn,
				Quantity:  product.Stock,
				Reason:    "Initial stock",
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RecordSale sells quantity units of a product at its current price. The
// stock decrement is conditional: `stock >= quantity` is checked in the same
// UPDATE that subtracts, so two concurrent sales of the last unit cannot both
// commit. On failure nothing is written.
func (s *InventoryService) RecordSale(ctx context.Context, productID string, quantity int) (models.Sale, error) {
	var sale models.Sale

	if quantity < 1 {
		metrics.SalesRejected.WithLabelValues("validation").Inc()
		return sale, ErrInvalidQuantity
	}

	err := orm.Transaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				metrics.SalesRejected.WithLabelValues("not_found").Inc()
				return repositories.ErrNotFound
			}
			return err
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", productID, quantity).
			Update("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			metrics.SalesRejected.WithLabelValues("insufficient_stock").Inc()
			return ErrInsufficientStock{Available: product.Stock}
		}

		sale = models.Sale{
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: product.Price,
			SaleDate:  time.Now(),
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		movement := models.StockMovement{
			ProductID: productID,
			Type:      models.MovementSale,
			Quantity:  -quantity,
			Reason:    fmt.Sprintf("Sale #%s", sale.ID),
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		return models.Sale{}, err
	}

	metrics.SalesRecorded.Inc()
	s.invalidateReports()
	return sale, nil
}

// AdjustStock applies a manual stock change and records the movement. The
// stored quantity is signed: inbound positive, outbound negative, adjustment
// as given. An adjustment that would push stock below zero is rejected the
// same way an oversized sale is.
func (s *InventoryService) AdjustStock(ctx context.Context, productID string, quantity int, movementType models.MovementType, reason string) (models.Product, error) {
	var product models.Product

	delta, err := movementDelta(quantity, movementType)
	if err != nil {
		return product, err
	}

	err = orm.Transaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repositories.ErrNotFound
			}
			return err
		}

		q := tx.Model(&models.Product{})
		if delta < 0 {
			q = q.Where("id = ? AND stock >= ?", productID, -delta)
		} else {
			q = q.Where("id = ?", productID)
		}
		res := q.Update("stock", gorm.Expr("stock + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock{Available: product.Stock}
		}

		movement := models.StockMovement{
			ProductID: productID,
			Type:      movementType,
			Quantity:  delta,
			Reason:    strings.TrimSpace(reason),
		}
		if err := tx.Create(&movement).Error; err != nil {
			return err
		}

		product.Stock += delta
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}

	s.invalidateReports()
	return product, nil
}

func movementDelta(quantity int, movementType models.MovementType) (int, error) {
	switch movementType {
	case models.MovementIn:
		if quantity < 1 {
			return 0, ErrInvalidQuantity
		}
		return quantity, nil
	case models.MovementOut:
		if quantity < 1 {
			return 0, ErrInvalidQuantity
		}
		return -quantity, nil
	case models.MovementAdjustment:
		if quantity == 0 {
			return 0, ErrInvalidQuantity
		}
		return quantity, nil
	default:
		return 0, ErrInvalidMovement
	}
}

// Product loads a single product by id.
func (s *InventoryService) Product(id string) (models.Product, error) {
	return s.products.FindByID(id)
}

// ProductDetail loads a product with its recent sales and movement history.
func (s *InventoryService) ProductDetail(id string) (ProductDetail, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return ProductDetail{}, err
	}

	sales, err := s.sales.ForProduct(id, 10)
	if err != nil {
		return ProductDetail{}, err
	}

	movements, err := s.movements.ForProduct(id, 10)
	if err != nil {
		return ProductDetail{}, err
	}

	return ProductDetail{Product: product, Sales: sales, Movements: movements}, nil
}

// ListProducts returns a page of products matching the free-text search and
// category filter, ten per page.
func (s *InventoryService) ListProducts(search, category string, page int) ([]models.Product, orm.Pagination, error) {
	return s.products.Search(search, category, page, 10)
}

// ListSales returns a page of sales inside the date window, twenty per page,
// together with the window's running totals.
func (s *InventoryService) ListSales(filter string, page int) ([]models.Sale, orm.Pagination, float64, int64, error) {
	sales, pagination, err := s.sales.List(filter, page, 20)
	if err != nil {
		return nil, orm.Pagination{}, 0, 0, err
	}

	totalSales, totalQuantity, err := s.sales.Totals(filter)
	if err != nil {
		return nil, orm.Pagination{}, 0, 0, err
	}

	return sales, pagination, totalSales, totalQuantity, nil
}

func (s *InventoryService) invalidateReports() {
	cache.Del(reportCacheKeys()...)
}

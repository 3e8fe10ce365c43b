package repositories

import (
	"time"

	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/pkg/metrics"
	"github.com/shashiranjanraj/stocktracker/pkg/orm"
	"gorm.io/gorm"
)

// Date-window filters accepted by the sales listing.
const (
	WindowAll   = ""
	WindowToday = "today"
	WindowWeek  = "week"
	WindowMonth = "month"
)

// WindowStart resolves a date_filter value to the window's opening instant.
// The second return is false for the unfiltered window.
func WindowStart(filter string, now time.Time) (time.Time, bool) {
	switch filter {
	case WindowToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case WindowWeek:
		return now.AddDate(0, 0, -7), true
	case WindowMonth:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

// CategorySales is one row of the per-category aggregation.
type CategorySales struct {
	Category      models.Category `json:"category"`
	TotalSales    float64         `json:"total_sales"`
	TotalQuantity int64           `json:"total_quantity"`
}

// ProductSales is one row of the top-products aggregation.
type ProductSales struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	TotalSales    float64 `json:"total_sales"`
	TotalQuantity int64   `json:"total_quantity"`
}

// SaleRepository handles database operations for Sale.
type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Recent returns the most recent sales with their products preloaded.
func (r *SaleRepository) Recent(limit int) ([]models.Sale, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var sales []models.Sale
	err := orm.New(r.db).Model(&models.Sale{}).
		Preload("Product").
		Order("sale_date desc").
		Limit(limit).
		Get(&sales)
	return sales, err
}

// ForProduct returns a product's most recent sales.
func (r *SaleRepository) ForProduct(productID string, limit int) ([]models.Sale, error) {
	var sales []models.Sale
	err := orm.New(r.db).Model(&models.Sale{}).
		Where("product_id = ?", productID).
		Order("sale_date desc").
		Limit(limit).
		Get(&sales)
	return sales, err
}

// List returns one page of sales inside the given date window, newest first.
func (r *SaleRepository) List(filter string, page, perPage int) ([]models.Sale, orm.Pagination, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	q := r.windowed(filter)

	var sales []models.Sale
	pagination, err := q.Preload("Product").
		Order("sale_date desc").
		GetWithPagination(&sales, page, perPage)
	return sales, pagination, err
}

// Totals sums total_price and quantity over the given date window.
func (r *SaleRepository) Totals(filter string) (totalSales float64, totalQuantity int64, err error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var row struct {
		TotalSales    float64
		TotalQuantity int64
	}
	err = r.windowed(filter).
		Select("COALESCE(SUM(total_price), 0) as total_sales, COALESCE(SUM(quantity), 0) as total_quantity").
		Scan(&row)
	return row.TotalSales, row.TotalQuantity, err
}

func (r *SaleRepository) windowed(filter string) *orm.Query {
	q := orm.New(r.db).Model(&models.Sale{})
	if start, ok := WindowStart(filter, time.Now()); ok {
		q = q.Where("sale_date >= ?", start)
	}
	return q
}

// Since returns all sales on or after t, oldest first.
func (r *SaleRepository) Since(t time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	err := orm.New(r.db).Model(&models.Sale{}).
		Where("sale_date >= ?", t).
		Order("sale_date asc").
		Get(&sales)
	return sales, err
}

// AllWithProducts returns every sale joined to its product, newest first.
// Used by the CSV export.
func (r *SaleRepository) AllWithProducts() ([]models.Sale, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var sales []models.Sale
	err := orm.New(r.db).Model(&models.Sale{}).
		Preload("Product").
		Order("sale_date desc").
		Get(&sales)
	return sales, err
}

// ByCategory sums sales totals and quantities per product category,
// biggest seller first.
func (r *SaleRepository) ByCategory() ([]CategorySales, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var rows []CategorySales
	err := orm.New(r.db).Model(&models.Sale{}).
		Select("products.category as category, SUM(sales.total_price) as total_sales, SUM(sales.quantity) as total_quantity").
		Joins("JOIN products ON products.id = sales.product_id").
		Group("products.category").
		Order("total_sales desc").
		Scan(&rows)
	return rows, err
}

// TopProducts returns the best-selling products by sales total. Revenue ties
// break by quantity sold, then name, so the ranking is deterministic.
func (r *SaleRepository) TopProducts(limit int) ([]ProductSales, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var rows []ProductSales
	err := orm.New(r.db).Model(&models.Sale{}).
		Select("products.name as name, products.sku as sku, SUM(sales.total_price) as total_sales, SUM(sales.quantity) as total_quantity").
		Joins("JOIN products ON products.id = sales.product_id").
		Group("products.id, products.name, products.sku").
		Order("total_sales desc, total_quantity desc, name asc").
		Limit(limit).
		Scan(&rows)
	return rows, err
}

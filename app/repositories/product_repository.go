package repositories

import (
	"errors"
	"strings"
	"time"

	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/pkg/metrics"
	"github.com/shashiranjanraj/stocktracker/pkg/orm"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id string) (models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var product models.Product
	err := orm.New(r.db).Model(&models.Product{}).Where("id = ?", id).First(&product)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

// SKUExists reports whether any product already uses sku.
func (r *ProductRepository) SKUExists(sku string) (bool, error) {
	n, err := orm.New(r.db).Model(&models.Product{}).Where("sku = ?", sku).Count()
	return n > 0, err
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(product).Error
}

// All returns every product in the listing's default order (name ASC).
func (r *ProductRepository) All() ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	err := orm.New(r.db).Model(&models.Product{}).Order("name asc").Get(&products)
	return products, err
}

// Search returns one page of products matching a case-insensitive substring
// search over name/SKU/description and an exact category filter. Either
// filter may be empty.
func (r *ProductRepository) Search(search, category string, page, perPage int) ([]models.Product, orm.Pagination, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	q := orm.New(r.db).Model(&models.Product{})

	if search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(description) LIKE ?",
			needle, needle, needle,
		)
	}

	if category != "" {
		q = q.Where("category = ?", category)
	}

	var products []models.Product
	pagination, err := q.Order("name asc").GetWithPagination(&products, page, perPage)
	return products, pagination, err
}

// Count returns the total number of products.
func (r *ProductRepository) Count() (int64, error) {
	return orm.New(r.db).Model(&models.Product{}).Count()
}

// CountLowStock counts products at or below their reorder threshold.
func (r *ProductRepository) CountLowStock() (int64, error) {
	return orm.New(r.db).Model(&models.Product{}).
		Where("stock <= low_stock_threshold").
		Count()
}

// CountOutOfStock counts products with zero stock.
func (r *ProductRepository) CountOutOfStock() (int64, error) {
	return orm.New(r.db).Model(&models.Product{}).Where("stock = 0").Count()
}

// LowStock returns the worst-stocked low-stock products, emptiest first.
func (r *ProductRepository) LowStock(limit int) ([]models.Product, error) {
	var products []models.Product
	err := orm.New(r.db).Model(&models.Product{}).
		Where("stock <= low_stock_threshold").
		Order("stock asc").
		Limit(limit).
		Get(&products)
	return products, err
}

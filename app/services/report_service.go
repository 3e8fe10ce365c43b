package services

import (
	"time"

	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/app/repositories"
	"github.com/shashiranjanraj/stocktracker/pkg/cache"
	"github.com/shashiranjanraj/stocktracker/pkg/collection"
	"gorm.io/gorm"
)

const (
	reportCacheTTL = 5 * time.Minute

	cacheKeyByCategory  = "reports:by_category"
	cacheKeyTopProducts = "reports:top_products"
	cacheKeyMonthly     = "reports:monthly"
)

func reportCacheKeys() []string {
	return []string{cacheKeyByCategory, cacheKeyTopProducts, cacheKeyMonthly}
}

// MonthlySales is one bucket of the trailing-year revenue report.
type MonthlySales struct {
	Month         string  `json:"month"` // "2006-01"
	TotalSales    float64 `json:"total_sales"`
	TotalQuantity int64   `json:"total_quantity"`
}

// ReportService computes the three sales aggregations. Results are cached in
// Redis for a few minutes and invalidated whenever stock state changes.
type ReportService struct {
	sales *repositories.SaleRepository
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{sales: repositories.NewSaleRepository(db)}
}

// ByCategory returns revenue and units per product category, highest revenue
// first. Categories with no sales are absent.
func (s *ReportService) ByCategory() ([]repositories.CategorySales, error) {
	var rows []repositories.CategorySales
	if cache.Get(cacheKeyByCategory, &rows) {
		return rows, nil
	}

	rows, err := s.sales.ByCategory()
	if err != nil {
		return nil, err
	}

	cache.Set(cacheKeyByCategory, rows, reportCacheTTL)
	return rows, nil
}

// TopProducts returns the ten products with the highest lifetime revenue.
func (s *ReportService) TopProducts() ([]repositories.ProductSales, error) {
	var rows []repositories.ProductSales
	if cache.Get(cacheKeyTopProducts, &rows) {
		return rows, nil
	}

	rows, err := s.sales.TopProducts(10)
	if err != nil {
		return nil, err
	}

	cache.Set(cacheKeyTopProducts, rows, reportCacheTTL)
	return rows, nil
}

// Monthly buckets the trailing 365 days of sales by calendar month. The
// grouping happens in Go rather than SQL so the report behaves identically
// across every supported database driver.
func (s *ReportService) Monthly() ([]MonthlySales, error) {
	var rows []MonthlySales
	if cache.Get(cacheKeyMonthly, &rows) {
		return rows, nil
	}

	since := time.Now().AddDate(0, 0, -365)
	sales, err := s.sales.Since(since)
	if err != nil {
		return nil, err
	}

	groups, months := collection.GroupBy(sales, func(sale models.Sale) string {
		return sale.SaleDate.Format("2006-01")
	})

	rows = make([]MonthlySales, 0, len(months))
	for _, month := range months {
		bucket := groups[month]
		row := MonthlySales{
			Month:      month,
			TotalSales: collection.SumBy(bucket, func(sale models.Sale) float64 { return sale.TotalPrice }),
		}
		for _, sale := range bucket {
			row.TotalQuantity += int64(sale.Quantity)
		}
		rows = append(rows, row)
	}

	cache.Set(cacheKeyMonthly, rows, reportCacheTTL)
	return rows, nil
}

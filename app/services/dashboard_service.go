package services

import (
	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/app/repositories"
	"github.com/shashiranjanraj/stocktracker/pkg/collection"
	"gorm.io/gorm"
)

// Dashboard is the landing-page snapshot.
type Dashboard struct {
	ProductCount    int64
	LowStockCount   int64
	OutOfStockCount int64
	InventoryValue  float64
	TodaySales      float64
	TodayQuantity   int64
	RecentSales     []models.Sale
	LowStock        []models.Product
}

// DashboardService assembles the overview numbers.
type DashboardService struct {
	products *repositories.ProductRepository
	sales    *repositories.SaleRepository
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		products: repositories.NewProductRepository(db),
		sales:    repositories.NewSaleRepository(db),
	}
}

// Overview collects product counts, today's takings, the five most recent
// sales and the ten lowest-stocked products.
func (s *DashboardService) Overview() (Dashboard, error) {
	var d Dashboard
	var err error

	if d.ProductCount, err = s.products.Count(); err != nil {
		return d, err
	}
	if d.LowStockCount, err = s.products.CountLowStock(); err != nil {
		return d, err
	}
	if d.OutOfStockCount, err = s.products.CountOutOfStock(); err != nil {
		return d, err
	}

	products, err := s.products.All()
	if err != nil {
		return d, err
	}
	d.InventoryValue = collection.SumBy(products, func(p models.Product) float64 {
		return p.TotalValue()
	})

	if d.TodaySales, d.TodayQuantity, err = s.sales.Totals(repositories.WindowToday); err != nil {
		return d, err
	}

	if d.RecentSales, err = s.sales.Recent(5); err != nil {
		return d, err
	}

	if d.LowStock, err = s.products.LowStock(10); err != nil {
		return d, err
	}

	return d, nil
}

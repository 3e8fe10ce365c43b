package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/app/repositories"
	"github.com/shashiranjanraj/stocktracker/config"
	"github.com/shashiranjanraj/stocktracker/pkg/metrics"
	"github.com/shashiranjanraj/stocktracker/pkg/storage"
	"gorm.io/gorm"
)

var stockStatusLabels = map[string]string{
	models.StockStatusOut: "Out of Stock",
	models.StockStatusLow: "Low Stock",
	models.StockStatusIn:  "In Stock",
}

// ExportService renders the product catalogue and sales ledger as CSV. The
// writers stream straight to an io.Writer so HTTP downloads never buffer the
// whole file; Archive reuses them to snapshot onto a storage disk.
type ExportService struct {
	products *repositories.ProductRepository
	sales    *repositories.SaleRepository
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{
		products: repositories.NewProductRepository(db),
		sales:    repositories.NewSaleRepository(db),
	}
}

// ProductsFilename is the date-stamped download name for the catalogue export.
func (s *ExportService) ProductsFilename() string {
	return fmt.Sprintf("products_%s.csv", time.Now().Format("2006-01-02"))
}

// SalesFilename is the date-stamped download name for the sales export.
func (s *ExportService) SalesFilename() string {
	return fmt.Sprintf("sales_%s.csv", time.Now().Format("2006-01-02"))
}

// WriteProducts streams the full catalogue, name order, one row per product.
func (s *ExportService) WriteProducts(w io.Writer) error {
	products, err := s.products.All()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	currency := config.CurrencySymbol()

	header := []string{
		"Name", "SKU", "Category",
		fmt.Sprintf("Price (%s)", currencyCode(currency)),
		"Stock", "Low Stock Threshold", "Stock Status",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range products {
		row := []string{
			p.Name,
			p.SKU,
			p.Category.Label(),
			money(currency, p.Price),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.LowStockThreshold),
			stockStatusLabels[p.StockStatus()],
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	metrics.ExportsGenerated.WithLabelValues("products").Inc()
	return nil
}

// WriteSales streams the complete sales ledger, newest first.
func (s *ExportService) WriteSales(w io.Writer) error {
	sales, err := s.sales.AllWithProducts()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	currency := config.CurrencySymbol()

	header := []string{
		"Date", "Product", "SKU", "Quantity",
		fmt.Sprintf("Unit Price (%s)", currencyCode(currency)),
		fmt.Sprintf("Total (%s)", currencyCode(currency)),
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, sale := range sales {
		row := []string{
			sale.SaleDate.Format("2006-01-02 15:04"),
			sale.Product.Name,
			sale.Product.SKU,
			strconv.Itoa(sale.Quantity),
			money(currency, sale.UnitPrice),
			money(currency, sale.TotalPrice),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	metrics.ExportsGenerated.WithLabelValues("sales").Inc()
	return nil
}

// Archive writes an export onto a named storage disk and returns the object
// path. exportType is "products" or "sales".
func (s *ExportService) Archive(exportType, disk string) (string, error) {
	var buf bytes.Buffer
	var name string

	switch exportType {
	case "products":
		if err := s.WriteProducts(&buf); err != nil {
			return "", err
		}
		name = s.ProductsFilename()
	case "sales":
		if err := s.WriteSales(&buf); err != nil {
			return "", err
		}
		name = s.SalesFilename()
	default:
		return "", fmt.Errorf("unknown export type %q", exportType)
	}

	path := "exports/" + name
	if err := storage.Use(disk).Put(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

func money(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// currencyCode maps the display symbol to the ISO code used in CSV headers.
func currencyCode(symbol string) string {
	if symbol == "R" {
		return "ZAR"
	}
	return symbol
}

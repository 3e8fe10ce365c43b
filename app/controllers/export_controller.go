package controllers

import (
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/stocktracker/app/services"
	"github.com/shashiranjanraj/stocktracker/pkg/logger"
	"gorm.io/gorm"
)

type ExportController struct {
	exports *services.ExportService
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{exports: services.NewExportService(db)}
}

// Download streams a CSV export. ?type=products (default) or ?type=sales.
func (c *ExportController) Download(w http.ResponseWriter, r *http.Request) {
	exportType := r.URL.Query().Get("type")

	switch exportType {
	case "sales":
		setCSVHeaders(w, c.exports.SalesFilename())
		if err := c.exports.WriteSales(w); err != nil {
			// Headers are gone by now; all we can do is log.
			logger.WithCtx(r.Context()).Error("sales export failed", "error", err)
		}
	case "products", "":
		setCSVHeaders(w, c.exports.ProductsFilename())
		if err := c.exports.WriteProducts(w); err != nil {
			logger.WithCtx(r.Context()).Error("products export failed", "error", err)
		}
	default:
		http.Error(w, "Bad Request", http.StatusBadRequest)
	}
}

func setCSVHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/stocktracker/app/services"
	"github.com/shashiranjanraj/stocktracker/pkg/logger"
	"github.com/shashiranjanraj/stocktracker/pkg/view"
	"gorm.io/gorm"
)

type ReportController struct {
	base
	reports *services.ReportService
}

func NewReportController(db *gorm.DB, views *view.Engine) *ReportController {
	return &ReportController{
		base:    base{views: views},
		reports: services.NewReportService(db),
	}
}

// Index renders all three sales aggregations on one page.
func (c *ReportController) Index(w http.ResponseWriter, r *http.Request) {
	byCategory, err := c.reports.ByCategory()
	if err != nil {
		logger.WithCtx(r.Context()).Error("category report failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	topProducts, err := c.reports.TopProducts()
	if err != nil {
		logger.WithCtx(r.Context()).Error("top products report failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	monthly, err := c.reports.Monthly()
	if err != nil {
		logger.WithCtx(r.Context()).Error("monthly report failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	c.render(w, r, http.StatusOK, "reports.html", view.Data{
		"Title":       "Reports",
		"ByCategory":  byCategory,
		"TopProducts": topProducts,
		"Monthly":     monthly,
	})
}

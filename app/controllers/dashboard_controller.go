package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/stocktracker/app/services"
	"github.com/shashiranjanraj/stocktracker/pkg/logger"
	"github.com/shashiranjanraj/stocktracker/pkg/view"
	"gorm.io/gorm"
)

type DashboardController struct {
	base
	dashboard *services.DashboardService
}

func NewDashboardController(db *gorm.DB, views *view.Engine) *DashboardController {
	return &DashboardController{
		base:      base{views: views},
		dashboard: services.NewDashboardService(db),
	}
}

// Index renders the overview page.
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	overview, err := c.dashboard.Overview()
	if err != nil {
		logger.WithCtx(r.Context()).Error("dashboard overview failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	c.render(w, r, http.StatusOK, "dashboard.html", view.Data{
		"Title":    "Dashboard",
		"Overview": overview,
	})
}

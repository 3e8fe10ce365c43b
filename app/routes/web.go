// Package routes wires URLs to controllers.
package routes

import (
	"github.com/shashiranjanraj/stocktracker/app/controllers"
	"github.com/shashiranjanraj/stocktracker/pkg/router"
	"github.com/shashiranjanraj/stocktracker/pkg/view"
	"gorm.io/gorm"
)

// Register mounts every page and action on the router.
func Register(r *router.Router, db *gorm.DB, views *view.Engine) {
	dashboard := controllers.NewDashboardController(db, views)
	products := controllers.NewProductController(db, views)
	sales := controllers.NewSaleController(db, views)
	reports := controllers.NewReportController(db, views)
	exports := controllers.NewExportController(db)

	r.Get("/", "dashboard", dashboard.Index)

	r.Get("/products/", "products.index", products.Index)
	r.Post("/products/", "products.store", products.Store)
	r.Get("/products/{id}/", "products.show", products.Show)
	r.Post("/products/{id}/stock/", "products.adjust_stock", products.AdjustStock)

	r.Get("/sales/", "sales.index", sales.Index)
	r.Post("/sales/record/", "sales.store", sales.Store)

	r.Get("/reports/", "reports.index", reports.Index)

	r.Get("/export/", "export.csv", exports.Download)
}

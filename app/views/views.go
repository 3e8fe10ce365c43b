// Package views embeds the HTML templates and builds the view engine.
package views

import (
	"embed"

	"github.com/shashiranjanraj/stocktracker/pkg/view"
)

//go:embed templates
var templateFS embed.FS

var pages = []string{
	"templates/dashboard.html",
	"templates/product_list.html",
	"templates/product_detail.html",
	"templates/sales_list.html",
	"templates/reports.html",
	"templates/not_found.html",
}

// Engine parses the embedded templates into a ready view engine.
func Engine() (*view.Engine, error) {
	return view.New(templateFS, "templates/layout.html", pages, nil)
}

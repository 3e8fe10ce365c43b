package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/stocktracker/app/repositories"
	"github.com/shashiranjanraj/stocktracker/app/services"
	"github.com/shashiranjanraj/stocktracker/config"
	"github.com/shashiranjanraj/stocktracker/pkg/form"
	"github.com/shashiranjanraj/stocktracker/pkg/logger"
	"github.com/shashiranjanraj/stocktracker/pkg/view"
	"gorm.io/gorm"
)

type SaleController struct {
	base
	inventory *services.InventoryService
	products  *repositories.ProductRepository
}

func NewSaleController(db *gorm.DB, views *view.Engine) *SaleController {
	return &SaleController{
		base:      base{views: views},
		inventory: services.NewInventoryService(db),
		products:  repositories.NewProductRepository(db),
	}
}

type saleForm struct {
	ProductID string `form:"product_id" validate:"required"`
	Quantity  int    `form:"quantity"   validate:"required,integer,gte=1"`
}

// Index lists sales inside the selected date window with running totals.
func (c *SaleController) Index(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("date_filter")
	page := queryInt(r, "page", 1)

	sales, pagination, totalSales, totalQuantity, err := c.inventory.ListSales(filter, page)
	if err != nil {
		logger.WithCtx(r.Context()).Error("sales listing failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// The record-sale form needs the catalogue for its product picker.
	products, err := c.products.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("sales listing failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	c.render(w, r, http.StatusOK, "sales_list.html", view.Data{
		"Title":         "Sales",
		"Sales":         sales,
		"Pagination":    pagination,
		"DateFilter":    filter,
		"TotalSales":    totalSales,
		"TotalQuantity": totalQuantity,
		"Products":      products,
	})
}

// Store records a sale. Success and validation problems both come back as a
// flash message after a redirect; an oversized sale lands on the product page
// so the shopkeeper can see the real level.
func (c *SaleController) Store(w http.ResponseWriter, r *http.Request) {
	var f saleForm
	fieldErrors, err := form.Decode(r, &f)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if len(fieldErrors) > 0 {
		flashAndRedirect(w, r, "error", firstError(fieldErrors), "/sales/")
		return
	}

	sale, err := c.inventory.RecordSale(r.Context(), f.ProductID, f.Quantity)
	if err != nil {
		var insufficient services.ErrInsufficientStock
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			flashAndRedirect(w, r, "error", "That product no longer exists.", "/products/")
		case errors.As(err, &insufficient):
			flashAndRedirect(w, r, "error",
				fmt.Sprintf("Not enough stock: only %d available.", insufficient.Available),
				"/products/"+f.ProductID+"/")
		case errors.Is(err, services.ErrInvalidQuantity):
			flashAndRedirect(w, r, "error", "Quantity must be at least 1.", "/sales/")
		default:
			logger.WithCtx(r.Context()).Error("sale record failed", "product_id", f.ProductID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	flashAndRedirect(w, r, "success",
		fmt.Sprintf("Sale recorded: %d units for %s%.2f.", sale.Quantity, config.CurrencySymbol(), sale.TotalPrice),
		"/sales/")
}

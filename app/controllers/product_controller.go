package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/app/repositories"
	"github.com/shashiranjanraj/stocktracker/app/services"
	"github.com/shashiranjanraj/stocktracker/pkg/form"
	"github.com/shashiranjanraj/stocktracker/pkg/logger"
	"github.com/shashiranjanraj/stocktracker/pkg/view"
	"gorm.io/gorm"
)

type ProductController struct {
	base
	inventory *services.InventoryService
}

func NewProductController(db *gorm.DB, views *view.Engine) *ProductController {
	return &ProductController{
		base:      base{views: views},
		inventory: services.NewInventoryService(db),
	}
}

type productForm struct {
	Name              string  `form:"name"                validate:"required,max=200"`
	SKU               string  `form:"sku"                 validate:"required,max=50"`
	Description       string  `form:"description"`
	Category          string  `form:"category"            validate:"required"`
	Price             float64 `form:"price"               validate:"required,numeric,gte=0.01"`
	Stock             int     `form:"stock"               validate:"integer,gte=0"`
	LowStockThreshold int     `form:"low_stock_threshold" validate:"integer,gte=0"`
}

type adjustStockForm struct {
	Quantity int    `form:"quantity"      validate:"required,integer"`
	Reason   string `form:"reason"        validate:"max=200"`
	Type     string `form:"movement_type" validate:"required,in=in,out,adjustment"`
}

// Index lists products with free-text search, category filter and pagination.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	page := queryInt(r, "page", 1)

	products, pagination, err := c.inventory.ListProducts(search, category, page)
	if err != nil {
		logger.WithCtx(r.Context()).Error("product listing failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	c.render(w, r, http.StatusOK, "product_list.html", view.Data{
		"Title":      "Products",
		"Products":   products,
		"Pagination": pagination,
		"Search":     search,
		"Category":   category,
		"Categories": models.Categories(),
	})
}

// Show renders one product with its recent sales and movement history.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := c.inventory.ProductDetail(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.views.NotFound(w, "product")
			return
		}
		logger.WithCtx(r.Context()).Error("product detail failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	c.render(w, r, http.StatusOK, "product_detail.html", view.Data{
		"Title":     detail.Product.Name,
		"Product":   detail.Product,
		"Sales":     detail.Sales,
		"Movements": detail.Movements,
	})
}

// Store creates a product from the catalogue form.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var f productForm
	fieldErrors, err := form.Decode(r, &f)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if len(fieldErrors) > 0 {
		flashAndRedirect(w, r, "error", firstError(fieldErrors), "/products/")
		return
	}

	product := models.Product{
		Name:              f.Name,
		SKU:               f.SKU,
		Description:       f.Description,
		Category:          models.Category(f.Category),
		Price:             f.Price,
		Stock:             f.Stock,
		LowStockThreshold: f.LowStockThreshold,
	}
	// A posted 0 is a deliberate opt-out of low-stock flagging; default only
	// when the field was left off the form entirely.
	if r.PostFormValue("low_stock_threshold") == "" {
		product.LowStockThreshold = 10
	}

	if err := c.inventory.CreateProduct(r.Context(), &product); err != nil {
		switch {
		case errors.Is(err, services.ErrSKUExists):
			flashAndRedirect(w, r, "error", fmt.Sprintf("SKU %q is already in use.", f.SKU), "/products/")
		case errors.Is(err, services.ErrInvalidCategory):
			flashAndRedirect(w, r, "error", "Please pick a valid category.", "/products/")
		case errors.Is(err, services.ErrInvalidPrice):
			flashAndRedirect(w, r, "error", "Price must be at least 0.01.", "/products/")
		default:
			logger.WithCtx(r.Context()).Error("product create failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	flashAndRedirect(w, r, "success",
		fmt.Sprintf("Product %q added to the catalogue.", product.Name),
		"/products/"+product.ID+"/")
}

// AdjustStock applies a manual stock movement to a product.
func (c *ProductController) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	detailURL := "/products/" + id + "/"

	var f adjustStockForm
	fieldErrors, err := form.Decode(r, &f)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if len(fieldErrors) > 0 {
		flashAndRedirect(w, r, "error", firstError(fieldErrors), detailURL)
		return
	}

	product, err := c.inventory.AdjustStock(r.Context(), id, f.Quantity, models.MovementType(f.Type), f.Reason)
	if err != nil {
		var insufficient services.ErrInsufficientStock
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			c.views.NotFound(w, "product")
		case errors.As(err, &insufficient):
			flashAndRedirect(w, r, "error",
				fmt.Sprintf("Cannot remove that many units: only %d in stock.", insufficient.Available),
				detailURL)
		case errors.Is(err, services.ErrInvalidQuantity), errors.Is(err, services.ErrInvalidMovement):
			flashAndRedirect(w, r, "error", "Invalid stock adjustment.", detailURL)
		default:
			logger.WithCtx(r.Context()).Error("stock adjust failed", "id", id, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	flashAndRedirect(w, r, "success",
		fmt.Sprintf("Stock updated: %s now holds %d units.", product.Name, product.Stock),
		detailURL)
}

func firstError(fieldErrors map[string]string) string {
	for _, msg := range fieldErrors {
		return msg
	}
	return "Invalid input."
}

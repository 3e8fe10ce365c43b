package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/app/routes"
	"github.com/shashiranjanraj/stocktracker/app/views"
	"github.com/shashiranjanraj/stocktracker/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*gorm.DB, http.Handler) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Sale{}, &models.StockMovement{}))

	engine, err := views.Engine()
	require.NoError(t, err)

	r := router.New()
	routes.Register(r, db, engine)
	return db, r.Handler()
}

func seedProduct(t *testing.T, db *gorm.DB, p models.Product) models.Product {
	t.Helper()
	require.NoError(t, db.Create(&p).Error)
	return p
}

func postForm(handler http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestDashboardPage(t *testing.T) {
	db, handler := newTestApp(t)
	seedProduct(t, db, models.Product{Name: "Rooibos Tea", SKU: "FB-1", Category: models.CategoryFoodBeverages, Price: 30, Stock: 2, LowStockThreshold: 5})

	rec := get(handler, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dashboard")
	assert.Contains(t, rec.Body.String(), "Rooibos Tea") // low stock table
}

func TestProductListPage(t *testing.T) {
	db, handler := newTestApp(t)
	seedProduct(t, db, models.Product{Name: "Wire Art", SKU: "AC-1", Category: models.CategoryArtsCrafts, Price: 185, Stock: 14})

	rec := get(handler, "/products")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wire Art")

	rec = get(handler, "/products?search=nomatch")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No products match")
}

func TestProductDetailPage(t *testing.T) {
	db, handler := newTestApp(t)
	p := seedProduct(t, db, models.Product{Name: "Braai Tongs", SKU: "HL-3", Category: models.CategoryHomeLiving, Price: 189, Stock: 18})

	rec := get(handler, "/products/"+p.ID)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Braai Tongs")
	assert.Contains(t, rec.Body.String(), "HL-3")

	rec = get(handler, "/products/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProduct(t *testing.T) {
	db, handler := newTestApp(t)

	rec := postForm(handler, "/products", url.Values{
		"name":                {"USB-C Charger"},
		"sku":                 {"EL-9"},
		"category":            {"electronics"},
		"price":               {"449.00"},
		"stock":               {"5"},
		"low_stock_threshold": {"3"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	var p models.Product
	require.NoError(t, db.First(&p, "sku = ?", "EL-9").Error)
	assert.Equal(t, "USB-C Charger", p.Name)
	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, "/products/"+p.ID+"/", rec.Header().Get("Location"))
}

func TestCreateProductValidation(t *testing.T) {
	db, handler := newTestApp(t)

	// Missing name redirects back without writing anything.
	rec := postForm(handler, "/products", url.Values{
		"sku":      {"EL-9"},
		"category": {"electronics"},
		"price":    {"10"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products/", rec.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateProductRejectsZeroPrice(t *testing.T) {
	db, handler := newTestApp(t)

	rec := postForm(handler, "/products", url.Values{
		"name":     {"Freebie"},
		"sku":      {"EL-0"},
		"category": {"electronics"},
		"price":    {"0"},
		"stock":    {"5"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products/", rec.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateProductThresholdDefaultsOnlyWhenOmitted(t *testing.T) {
	db, handler := newTestApp(t)

	// An explicit zero opts out of low-stock flagging.
	postForm(handler, "/products", url.Values{
		"name":                {"No Alerts"},
		"sku":                 {"HL-8"},
		"category":            {"home_living"},
		"price":               {"99"},
		"stock":               {"4"},
		"low_stock_threshold": {"0"},
	})

	// Leaving the field off the form gets the default.
	postForm(handler, "/products", url.Values{
		"name":     {"Defaulted"},
		"sku":      {"HL-9"},
		"category": {"home_living"},
		"price":    {"99"},
		"stock":    {"4"},
	})

	var optOut, defaulted models.Product
	require.NoError(t, db.First(&optOut, "sku = ?", "HL-8").Error)
	require.NoError(t, db.First(&defaulted, "sku = ?", "HL-9").Error)
	assert.Equal(t, 0, optOut.LowStockThreshold)
	assert.Equal(t, 10, defaulted.LowStockThreshold)
	assert.False(t, optOut.IsLowStock())
}

func TestRecordSaleFlow(t *testing.T) {
	db, handler := newTestApp(t)
	p := seedProduct(t, db, models.Product{Name: "Speaker", SKU: "EL-2", Category: models.CategoryElectronics, Price: 599, Stock: 12})

	rec := postForm(handler, "/sales/record", url.Values{
		"product_id": {p.ID},
		"quantity":   {"3"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/sales/", rec.Header().Get("Location"))

	var fresh models.Product
	require.NoError(t, db.First(&fresh, "id = ?", p.ID).Error)
	assert.Equal(t, 9, fresh.Stock)
}

func TestRecordSaleInsufficientStockRedirectsToProduct(t *testing.T) {
	db, handler := newTestApp(t)
	p := seedProduct(t, db, models.Product{Name: "Scarce", SKU: "EL-3", Category: models.CategoryElectronics, Price: 10, Stock: 2})

	rec := postForm(handler, "/sales/record", url.Values{
		"product_id": {p.ID},
		"quantity":   {"5"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products/"+p.ID+"/", rec.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAdjustStockFlow(t *testing.T) {
	db, handler := newTestApp(t)
	p := seedProduct(t, db, models.Product{Name: "Trowel", SKU: "GP-3", Category: models.CategoryGardenPlants, Price: 95, Stock: 9})

	rec := postForm(handler, "/products/"+p.ID+"/stock", url.Values{
		"movement_type": {"in"},
		"quantity":      {"20"},
		"reason":        {"Supplier delivery"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, "id = ?", p.ID).Error)
	assert.Equal(t, 29, fresh.Stock)
}

func TestSalesListPage(t *testing.T) {
	db, handler := newTestApp(t)
	p := seedProduct(t, db, models.Product{Name: "Candle", SKU: "HL-2", Category: models.CategoryHomeLiving, Price: 145, Stock: 50})
	sale := models.Sale{ProductID: p.ID, Quantity: 2, UnitPrice: 145}
	require.NoError(t, db.Create(&sale).Error)

	rec := get(handler, "/sales")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Candle")
	assert.Contains(t, rec.Body.String(), "R290.00")
}

func TestReportsPage(t *testing.T) {
	db, handler := newTestApp(t)
	p := seedProduct(t, db, models.Product{Name: "Tea", SKU: "FB-1", Category: models.CategoryFoodBeverages, Price: 30, Stock: 100})
	sale := models.Sale{ProductID: p.ID, Quantity: 4, UnitPrice: 30}
	require.NoError(t, db.Create(&sale).Error)

	rec := get(handler, "/reports")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Food &amp; Beverages")
	assert.Contains(t, rec.Body.String(), "R120.00")
}

func TestExportDownloads(t *testing.T) {
	db, handler := newTestApp(t)
	seedProduct(t, db, models.Product{Name: "Lamp", SKU: "EL-1", Category: models.CategoryElectronics, Price: 325, Stock: 3})

	rec := get(handler, "/export?type=products")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "Name,SKU,Category,Price (ZAR)")
	assert.Contains(t, rec.Body.String(), "Lamp,EL-1,Electronics,R325.00")

	rec = get(handler, "/export?type=sales")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Date,Product,SKU,Quantity")

	rec = get(handler, "/export?type=invoices")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

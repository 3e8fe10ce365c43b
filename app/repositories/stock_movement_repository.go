package repositories

import (
	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/pkg/orm"
	"gorm.io/gorm"
)

// StockMovementRepository handles database operations for StockMovement.
type StockMovementRepository struct {
	db *gorm.DB
}

func NewStockMovementRepository(db *gorm.DB) *StockMovementRepository {
	return &StockMovementRepository{db: db}
}

// Create persists a new movement record.
func (r *StockMovementRepository) Create(movement *models.StockMovement) error {
	return r.db.Create(movement).Error
}

// ForProduct returns a product's most recent movements.
func (r *StockMovementRepository) ForProduct(productID string, limit int) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := orm.New(r.db).Model(&models.StockMovement{}).
		Where("product_id = ?", productID).
		Order("created_at desc").
		Limit(limit).
		Get(&movements)
	return movements, err
}

// CountForProduct counts all movements recorded against a product.
func (r *StockMovementRepository) CountForProduct(productID string) (int64, error) {
	return orm.New(r.db).Model(&models.StockMovement{}).
		Where("product_id = ?", productID).
		Count()
}

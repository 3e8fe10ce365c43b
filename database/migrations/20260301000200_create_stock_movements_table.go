package migrations

import (
	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000200_create_stock_movements_table", &CreateStockMovementsTable{})
}

type CreateStockMovementsTable struct{}

func (CreateStockMovementsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.StockMovement{})
}

func (CreateStockMovementsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.StockMovement{})
}

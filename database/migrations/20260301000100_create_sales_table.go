package migrations

import (
	"github.com/shashiranjanraj/stocktracker/app/models"
	"github.com/shashiranjanraj/stocktracker/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000100_create_sales_table", &CreateSalesTable{})
}

type CreateSalesTable struct{}

func (CreateSalesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Sale{})
}

func (CreateSalesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Sale{})
}

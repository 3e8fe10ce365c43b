package orm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func newTestDB(t *testing.T, count int) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))

	for i := 1; i <= count; i++ {
		require.NoError(t, db.Create(&widget{Name: fmt.Sprintf("widget-%02d", i)}).Error)
	}
	return db
}

func TestGetWithPagination(t *testing.T) {
	db := newTestDB(t, 23)

	var page1 []widget
	p, err := New(db).Model(&widget{}).Order("id asc").GetWithPagination(&page1, 1, 10)
	require.NoError(t, err)

	assert.Len(t, page1, 10)
	assert.Equal(t, int64(23), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 2, p.NextPage())
	assert.Equal(t, "widget-01", page1[0].Name)

	var page3 []widget
	p, err = New(db).Model(&widget{}).Order("id asc").GetWithPagination(&page3, 3, 10)
	require.NoError(t, err)

	assert.Len(t, page3, 3)
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
	assert.Equal(t, []int{1, 2, 3}, p.PageRange())
}

func TestGetWithPaginationOutOfRange(t *testing.T) {
	db := newTestDB(t, 5)

	var rows []widget
	p, err := New(db).Model(&widget{}).GetWithPagination(&rows, 9, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, int64(5), p.Total)
}

func TestGetWithPaginationDefaults(t *testing.T) {
	db := newTestDB(t, 5)

	var rows []widget
	p, err := New(db).Model(&widget{}).GetWithPagination(&rows, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)
	assert.Len(t, rows, 5)
}

func TestTransactionRollsBack(t *testing.T) {
	db := newTestDB(t, 0)

	err := Transaction(db, func(tx *gorm.DB) error {
		if err := tx.Create(&widget{Name: "doomed"}).Error; err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&widget{}).Count(&count).Error)
	assert.Zero(t, count)
}

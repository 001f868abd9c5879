package coa_mock

import (
	"fmt"
	"testing"

	"github.com/gudangkita/coa_service/coa_core"
	"github.com/zeebo/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SqliteDatabase opens an in-memory database with the service schema
// migrated, for service-level tests.
func SqliteDatabase(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.Nil(t, err)

	err = db.AutoMigrate(
		&coa_core.Account{},
		&coa_core.Suggestion{},
	)
	assert.Nil(t, err)

	return db
}

package coa_service

import (
	"log"
	"log/slog"

	"github.com/gudangkita/coa_service/coa_core"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MigrationHandler func() error

func NewMigrationHandler(
	db *gorm.DB,
) MigrationHandler {
	return func() error {
		log.Println("migrating coa service")
		err := db.AutoMigrate(
			&coa_core.Account{},
			&coa_core.Suggestion{},
		)
		if err != nil {
			return err
		}

		return nil
	}
}

type SeedHandler func() error

// NewSeedHandler inserts the default chart of accounts. Existing codes are
// left untouched so reseeding is safe.
func NewSeedHandler(
	db *gorm.DB,
) SeedHandler {
	return func() error {
		log.Println("seeding chart of accounts")

		for _, acc := range coa_core.DefaultChartOfAccounts() {
			err := db.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(acc).
				Error

			if err != nil {
				slog.Error(err.Error(), "code", acc.Code)
				return err
			}
		}

		return nil
	}
}

package coa_mock

import (
	"testing"

	"github.com/gudangkita/coa_service/coa_core"
	"github.com/zeebo/assert"
	"gorm.io/gorm"
)

// PopulateChart seeds the default chart plus any extra fixture accounts,
// skipping codes that already exist.
func PopulateChart(t *testing.T, db *gorm.DB, extra ...*coa_core.Account) {
	accs := coa_core.DefaultChartOfAccounts()
	accs = append(accs, extra...)

	for _, acc := range accs {
		var old coa_core.Account
		err := db.
			Model(&coa_core.Account{}).
			Where("code = ?", acc.Code).
			Find(&old).
			Error

		if err != nil {
			assert.Nil(t, err)
		}

		if old.ID != 0 {
			continue
		}

		err = db.Create(acc).Error
		if err != nil {
			assert.Nil(t, err)
		}
	}
}

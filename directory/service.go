// Package directory supplies account directory snapshots for the suggestion
// engine. Snapshots are immutable once handed out; the unique index on
// account code is the arbiter for concurrent allocations.
package directory

import (
	"context"

	"github.com/gudangkita/coa_service/coa_core"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Snapshot(ctx context.Context) ([]*coa_core.Account, error)
}

func NewDirectoryService(db *gorm.DB) *directoryServiceImpl {
	return &directoryServiceImpl{
		db: db,
	}
}

type directoryServiceImpl struct {
	db *gorm.DB
}

// Snapshot implements Provider. Inactive accounts never take part in
// matching or allocation and are filtered here.
func (d *directoryServiceImpl) Snapshot(ctx context.Context) ([]*coa_core.Account, error) {
	accounts := []*coa_core.Account{}

	err := d.db.
		WithContext(ctx).
		Model(&coa_core.Account{}).
		Where("is_active = ?", true).
		Order("code").
		Find(&accounts).
		Error

	if err != nil {
		return nil, errors.Wrap(coa_core.ErrDirectoryUnavailable, err.Error())
	}

	return accounts, nil
}

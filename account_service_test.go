package coa_service_test

import (
	"testing"

	coa_service "github.com/gudangkita/coa_service"
	"github.com/gudangkita/coa_service/coa_core"
	"github.com/gudangkita/coa_service/coa_mock"
	"github.com/stretchr/testify/assert"
)

func TestAccountCreate(t *testing.T) {
	db := coa_mock.SqliteDatabase(t)
	coa_mock.PopulateChart(t, db)

	srv := coa_service.NewAccountService(db)

	res, err := srv.AccountCreate(t.Context(), &coa_service.AccountCreateRequest{
		Code:       "1-1038",
		Name:       "Bank Mandiri",
		ParentCode: "1-1000",
		IsPostable: true,
	})
	assert.Nil(t, err)
	assert.Equal(t, "1-1038", res.Data.Code)
	assert.Equal(t, coa_core.ASSET, res.Data.Class)
	assert.True(t, res.Data.IsActive)

	t.Run("duplicate code", func(t *testing.T) {
		_, err := srv.AccountCreate(t.Context(), &coa_service.AccountCreateRequest{
			Code:       "1-1038",
			Name:       "Bank Mandiri Cabang Bekasi",
			IsPostable: true,
		})
		assert.NotNil(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := srv.AccountCreate(t.Context(), &coa_service.AccountCreateRequest{
			Code: "1-1039",
		})
		assert.NotNil(t, err)
	})

	t.Run("malformed code", func(t *testing.T) {
		_, err := srv.AccountCreate(t.Context(), &coa_service.AccountCreateRequest{
			Code: "7-1000",
			Name: "Akun Liar",
		})
		assert.NotNil(t, err)
	})

	t.Run("class prefix mismatch", func(t *testing.T) {
		_, err := srv.AccountCreate(t.Context(), &coa_service.AccountCreateRequest{
			Code:  "1-1040",
			Name:  "Beban Nyasar",
			Class: coa_core.EXPENSE,
		})
		assert.NotNil(t, err)
	})
}

func TestAccountList(t *testing.T) {
	db := coa_mock.SqliteDatabase(t)
	coa_mock.PopulateChart(t, db)

	srv := coa_service.NewAccountService(db)

	all, err := srv.AccountList(t.Context(), &coa_service.AccountListRequest{})
	assert.Nil(t, err)
	assert.NotEqual(t, int64(0), all.TotalItem)
	// ordered by code
	assert.Equal(t, "1-1000", all.Data[0].Code)

	t.Run("class filter", func(t *testing.T) {
		res, err := srv.AccountList(t.Context(), &coa_service.AccountListRequest{
			Class: coa_core.EXPENSE,
		})
		assert.Nil(t, err)
		for _, acc := range res.Data {
			assert.Equal(t, coa_core.EXPENSE, acc.Class)
		}
	})

	t.Run("postable only excludes headers", func(t *testing.T) {
		res, err := srv.AccountList(t.Context(), &coa_service.AccountListRequest{
			PostableOnly: true,
		})
		assert.Nil(t, err)
		for _, acc := range res.Data {
			assert.True(t, acc.IsPostable)
		}
	})
}

func TestAccountDeactivate(t *testing.T) {
	db := coa_mock.SqliteDatabase(t)
	coa_mock.PopulateChart(t, db)

	srv := coa_service.NewAccountService(db)

	var kas coa_core.Account
	err := db.Where("code = ?", "1-1001").First(&kas).Error
	assert.Nil(t, err)

	res, err := srv.AccountDeactivate(t.Context(), &coa_service.AccountDeactivateRequest{
		ID: kas.ID,
	})
	assert.Nil(t, err)
	assert.False(t, res.Data.IsActive)

	// the row survives deactivation
	var stored coa_core.Account
	err = db.Where("code = ?", "1-1001").First(&stored).Error
	assert.Nil(t, err)
	assert.False(t, stored.IsActive)

	t.Run("active only list skips it", func(t *testing.T) {
		list, err := srv.AccountList(t.Context(), &coa_service.AccountListRequest{
			ActiveOnly: true,
		})
		assert.Nil(t, err)
		for _, acc := range list.Data {
			assert.NotEqual(t, "1-1001", acc.Code)
		}
	})
}

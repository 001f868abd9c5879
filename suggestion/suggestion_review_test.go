package suggestion_test

import (
	"testing"
	"time"

	"github.com/gudangkita/coa_service/coa_core"
	"github.com/gudangkita/coa_service/coa_mock"
	"github.com/gudangkita/coa_service/directory"
	"github.com/gudangkita/coa_service/suggestion"
	"github.com/stretchr/testify/assert"
)

func TestSuggestionApproveAutoCreated(t *testing.T) {
	db := coa_mock.SqliteDatabase(t)
	coa_mock.PopulateChart(t, db)

	srv := suggestion.NewSuggestionService(
		db,
		coa_core.NewEngine(&coa_mock.StaticAdvisor{
			Advice: &coa_core.Advice{
				Category:     "Gaji",
				ProposedName: "Beban Gaji Karyawan",
				IntentCode:   "pay_salary",
				Confidence:   0.85,
			},
		}),
		directory.NewDirectoryService(db),
	)

	created, err := srv.SuggestionCreate(t.Context(), &suggestion.SuggestionCreateRequest{
		Description: "Pembayaran gaji karyawan bulan Januari",
	})
	assert.Nil(t, err)
	assert.Equal(t, "6-1001", created.Data.SelectedAccountCode)

	res, err := srv.SuggestionApprove(t.Context(), &suggestion.SuggestionApproveRequest{
		ID: created.Data.ID,
	})
	assert.Nil(t, err)
	assert.Equal(t, coa_core.StatusApproved, res.Data.Status)
	assert.False(t, res.Data.Reviewed.IsZero())

	assert.NotNil(t, res.Account)
	assert.Equal(t, "6-1001", res.Account.Code)
	assert.Equal(t, "Beban Gaji Karyawan", res.Account.Name)
	assert.Equal(t, "6-1000", res.Account.ParentCode)
	assert.True(t, res.Account.IsPostable)

	var stored coa_core.Account
	err = db.Where("code = ?", "6-1001").First(&stored).Error
	assert.Nil(t, err)

	t.Run("approve again fails", func(t *testing.T) {
		_, err := srv.SuggestionApprove(t.Context(), &suggestion.SuggestionApproveRequest{
			ID: created.Data.ID,
		})
		assert.NotNil(t, err)
	})

	t.Run("next suggestion sees the new account", func(t *testing.T) {
		next, err := srv.SuggestionCreate(t.Context(), &suggestion.SuggestionCreateRequest{
			Description: "Pembayaran gaji satpam bulan Januari",
		})
		assert.Nil(t, err)
		assert.Equal(t, "6-1002", next.Data.SelectedAccountCode)
	})
}

func TestSuggestionApproveCodeCollision(t *testing.T) {
	db := coa_mock.SqliteDatabase(t)
	coa_mock.PopulateChart(t, db)

	srv := suggestion.NewSuggestionService(
		db,
		coa_core.NewEngine(&coa_mock.StaticAdvisor{
			Advice: &coa_core.Advice{
				Category:     "Gaji",
				ProposedName: "Beban Gaji Karyawan",
				Confidence:   0.85,
			},
		}),
		directory.NewDirectoryService(db),
	)

	created, err := srv.SuggestionCreate(t.Context(), &suggestion.SuggestionCreateRequest{
		Description: "Pembayaran gaji karyawan bulan Januari",
	})
	assert.Nil(t, err)
	assert.Equal(t, "6-1001", created.Data.SelectedAccountCode)

	// another reviewer takes 6-1001 before this suggestion is approved
	err = db.Create(&coa_core.Account{
		Code:       "6-1001",
		Name:       "Beban Gaji Harian",
		Class:      coa_core.EXPENSE,
		ParentCode: "6-1000",
		IsActive:   true,
		IsPostable: true,
		Created:    time.Now(),
	}).Error
	assert.Nil(t, err)

	res, err := srv.SuggestionApprove(t.Context(), &suggestion.SuggestionApproveRequest{
		ID: created.Data.ID,
	})
	assert.Nil(t, err)
	assert.Equal(t, "6-1002", res.Account.Code)
	assert.Equal(t, "6-1002", res.Data.SelectedAccountCode)
}

func TestSuggestionApproveNeedsReview(t *testing.T) {
	db := coa_mock.SqliteDatabase(t)
	coa_mock.PopulateChart(t, db)

	srv := suggestion.NewSuggestionService(
		db,
		coa_core.NewEngine(&coa_mock.StaticAdvisor{
			Advice: &coa_core.Advice{
				Category:     "Gaji",
				ProposedName: "Beban Gaji Karyawan",
				Confidence:   0.4,
			},
		}),
		directory.NewDirectoryService(db),
	)

	created, err := srv.SuggestionCreate(t.Context(), &suggestion.SuggestionCreateRequest{
		Description: "Pembayaran gaji karyawan bulan Januari",
	})
	assert.Nil(t, err)
	assert.Equal(t, coa_core.ActionNeedsReview, created.Data.ActionTaken)
	assert.Equal(t, coa_core.StatusNeedsReview, created.Data.Status)
	assert.Equal(t, "", created.Data.SelectedAccountCode)

	// allocation was deferred, approval assigns the code
	res, err := srv.SuggestionApprove(t.Context(), &suggestion.SuggestionApproveRequest{
		ID: created.Data.ID,
	})
	assert.Nil(t, err)
	assert.Equal(t, "6-1001", res.Account.Code)
	assert.Equal(t, "6-1001", res.Data.SelectedAccountCode)
	assert.Equal(t, coa_core.StatusApproved, res.Data.Status)
}

func TestSuggestionApproveReused(t *testing.T) {
	db := coa_mock.SqliteDatabase(t)
	coa_mock.PopulateChart(t, db)

	srv := suggestion.NewSuggestionService(
		db,
		coa_core.NewEngine(&coa_mock.StaticAdvisor{
			Advice: &coa_core.Advice{
				Category:     "Kas",
				ProposedName: "Kas Kecil",
				Confidence:   0.9,
			},
		}),
		directory.NewDirectoryService(db),
	)

	created, err := srv.SuggestionCreate(t.Context(), &suggestion.SuggestionCreateRequest{
		Description: "Kas Kecil",
	})
	assert.Nil(t, err)
	assert.Equal(t, coa_core.ActionReused, created.Data.ActionTaken)
	assert.Equal(t, "1-1002", created.Data.SelectedAccountCode)

	t.Run("fails when the account was deactivated", func(t *testing.T) {
		err := db.Model(&coa_core.Account{}).
			Where("code = ?", "1-1002").
			Update("is_active", false).
			Error
		assert.Nil(t, err)

		_, aerr := srv.SuggestionApprove(t.Context(), &suggestion.SuggestionApproveRequest{
			ID: created.Data.ID,
		})
		assert.NotNil(t, aerr)
	})

	t.Run("succeeds once the account is active again", func(t *testing.T) {
		err := db.Model(&coa_core.Account{}).
			Where("code = ?", "1-1002").
			Update("is_active", true).
			Error
		assert.Nil(t, err)

		res, aerr := srv.SuggestionApprove(t.Context(), &suggestion.SuggestionApproveRequest{
			ID: created.Data.ID,
		})
		assert.Nil(t, aerr)
		assert.Equal(t, "1-1002", res.Account.Code)

		// reuse never duplicates the account
		var count int64
		cerr := db.Model(&coa_core.Account{}).Where("code = ?", "1-1002").Count(&count).Error
		assert.Nil(t, cerr)
		assert.Equal(t, int64(1), count)
	})
}

func TestSuggestionReject(t *testing.T) {
	db := coa_mock.SqliteDatabase(t)
	coa_mock.PopulateChart(t, db)

	srv := suggestion.NewSuggestionService(
		db,
		coa_core.NewEngine(&coa_mock.StaticAdvisor{
			Advice: &coa_core.Advice{
				Category:     "Gaji",
				ProposedName: "Beban Gaji Karyawan",
				Confidence:   0.85,
			},
		}),
		directory.NewDirectoryService(db),
	)

	created, err := srv.SuggestionCreate(t.Context(), &suggestion.SuggestionCreateRequest{
		Description: "Pembayaran gaji karyawan bulan Januari",
	})
	assert.Nil(t, err)

	res, err := srv.SuggestionReject(t.Context(), &suggestion.SuggestionRejectRequest{
		ID: created.Data.ID,
	})
	assert.Nil(t, err)
	assert.Equal(t, coa_core.StatusRejected, res.Data.Status)

	// rejection materializes nothing
	var count int64
	cerr := db.Model(&coa_core.Account{}).Where("code = ?", "6-1001").Count(&count).Error
	assert.Nil(t, cerr)
	assert.Equal(t, int64(0), count)

	t.Run("approve after reject fails", func(t *testing.T) {
		_, err := srv.SuggestionApprove(t.Context(), &suggestion.SuggestionApproveRequest{
			ID: created.Data.ID,
		})
		assert.NotNil(t, err)
	})
}

package advisor_test

import (
	"testing"

	"github.com/gudangkita/coa_service/advisor"
	"github.com/gudangkita/coa_service/coa_core"
	"github.com/stretchr/testify/assert"
)

func TestBayesAdvise(t *testing.T) {
	bayes := advisor.NewBayes(coa_core.DefaultCategoryRules())

	advice, err := bayes.Advise(t.Context(), "pembayaran gaji payroll karyawan", nil)
	assert.Nil(t, err)
	assert.Equal(t, "Gaji", advice.Category)
	assert.Equal(t, "pembayaran gaji payroll karyawan", advice.ProposedName)
	assert.Equal(t, "classify_gaji", advice.IntentCode)
	assert.True(t, advice.Confidence > 0)
	assert.True(t, advice.Confidence <= 1)
}

func TestBayesAdviseNoTerms(t *testing.T) {
	bayes := advisor.NewBayes(coa_core.DefaultCategoryRules())

	advice, err := bayes.Advise(t.Context(), "12 34", nil)
	assert.Nil(t, err)
	assert.Equal(t, "", advice.Category)
	assert.Equal(t, 0.0, advice.Confidence)
}

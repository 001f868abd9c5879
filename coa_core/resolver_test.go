package coa_core_test

import (
	"testing"

	"github.com/gudangkita/coa_service/coa_core"
	"github.com/stretchr/testify/assert"
)

func named(code, name string, postable bool) *coa_core.Account {
	return &coa_core.Account{
		Code:       code,
		Name:       name,
		IsActive:   true,
		IsPostable: postable,
	}
}

func TestResolveExactMatch(t *testing.T) {
	rules := coa_core.DefaultCategoryRules()
	accounts := []*coa_core.Account{
		named("1-1038", "Bank Mandiri", true),
		named("1-1039", "Bank Syariah Indonesia", true),
		named("6-1001", "Beban Gaji Karyawan", true),
	}

	t.Run("full name equality, case insensitive", func(t *testing.T) {
		res := coa_core.Resolve("bank mandiri", accounts, rules)
		if assert.NotNil(t, res.ExactMatch) {
			assert.Equal(t, "1-1038", res.ExactMatch.Code)
		}
	})

	t.Run("substring is never a match", func(t *testing.T) {
		// "Bank" alone must not resolve to either bank account
		res := coa_core.Resolve("Bank", accounts, rules)
		assert.Nil(t, res.ExactMatch)
		if assert.NotNil(t, res.Category) {
			assert.Equal(t, "Bank", res.Category.Name)
		}
	})

	t.Run("non postable accounts are excluded", func(t *testing.T) {
		headers := []*coa_core.Account{
			named("1-1000", "Kas & Bank", false),
		}
		res := coa_core.Resolve("Kas & Bank", headers, rules)
		assert.Nil(t, res.ExactMatch)
	})

	t.Run("inactive accounts are excluded", func(t *testing.T) {
		inactive := named("1-1040", "Bank BCA", true)
		inactive.IsActive = false
		res := coa_core.Resolve("Bank BCA", []*coa_core.Account{inactive}, rules)
		assert.Nil(t, res.ExactMatch)
	})
}

func TestFindAccountByName(t *testing.T) {
	accounts := []*coa_core.Account{
		named("1-2001", "Kendaraan", true),
	}

	assert.NotNil(t, coa_core.FindAccountByName("kendaraan", accounts))
	assert.Nil(t, coa_core.FindAccountByName("Kendaraan Operasional", accounts))
}

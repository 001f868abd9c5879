package coa_core_test

import (
	"testing"

	"github.com/gudangkita/coa_service/coa_core"
	"github.com/stretchr/testify/assert"
)

func TestIsBlacklisted(t *testing.T) {
	blocked := []string{
		"B 1234 ABC",
		"b 1234 abc",
		"AB 123 CD",
		"D1234XY",
		"B1",
		"12345",
		"0812345678",
		"SN12345",
		"sn-12345",
		"SN:9991",
		"IMEI356938035643809",
		"IMEI-356938035643809",
		"SKU88231",
		"sku:88231",
	}

	for _, desc := range blocked {
		assert.True(t, coa_core.IsBlacklisted(desc), desc)
	}

	allowed := []string{
		"",
		"Pembayaran gaji karyawan bulan Januari",
		"Bank Mandiri",
		"Sewa gudang tahun 2024",
		"Beli 3 printer",
		"123",
		"Servis mobil operasional",
	}

	for _, desc := range allowed {
		assert.False(t, coa_core.IsBlacklisted(desc), desc)
	}
}

package coa_core_test

import (
	"testing"

	"github.com/gudangkita/coa_service/coa_core"
	"github.com/stretchr/testify/assert"
)

func TestExtractVehicleMetadata(t *testing.T) {
	vm := coa_core.ExtractVehicleMetadata("Mobil Toyota Avanza B 5678 XY dibeli untuk operasional")
	assert.Equal(t, "Toyota", vm.Brand)
	assert.Equal(t, "Avanza", vm.Model)
	assert.Equal(t, "B 5678 XY", vm.PlateNumber)

	vm = coa_core.ExtractVehicleMetadata("Servis motor Yamaha NMAX")
	assert.Equal(t, "Yamaha", vm.Brand)
	assert.Equal(t, "NMAX", vm.Model)
	assert.Equal(t, "", vm.PlateNumber)

	vm = coa_core.ExtractVehicleMetadata("Perpanjang STNK mobil dinas")
	assert.True(t, vm.Brand == "" && vm.Model == "")
}

func TestHasVehicleKeyword(t *testing.T) {
	assert.True(t, coa_core.HasVehicleKeyword("beli mobil bekas"))
	assert.True(t, coa_core.HasVehicleKeyword("Truk pengiriman"))
	assert.False(t, coa_core.HasVehicleKeyword("bayar gaji"))
}

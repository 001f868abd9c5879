package coa_core

import (
	"regexp"
	"strings"
)

// Brand and model dictionaries for vehicle metadata extraction. Data, not
// control flow; extend here when the fleet grows.
var vehicleBrands = map[string][]string{
	"Toyota":     {"Avanza", "Innova", "Rush", "Calya", "Hilux", "Fortuner"},
	"Daihatsu":   {"Xenia", "Gran Max", "Terios", "Sigra", "Luxio"},
	"Honda":      {"Brio", "HR-V", "CR-V", "Mobilio", "Vario", "Beat", "PCX"},
	"Suzuki":     {"Ertiga", "Carry", "APV", "XL7"},
	"Mitsubishi": {"Xpander", "Pajero", "L300", "Colt Diesel"},
	"Isuzu":      {"Panther", "Elf", "Traga"},
	"Hino":       {"Dutro", "Ranger"},
	"Yamaha":     {"NMAX", "Aerox", "Mio"},
}

var vehicleKeywords = []string{"mobil", "motor", "truk", "kendaraan", "pickup", "unit"}

// plates are written uppercase, eg "B 5678 XY"
var plateRe = regexp.MustCompile(`\b[A-Z]{1,2}\s*\d{1,4}\s*[A-Z]{0,3}\b`)

// HasVehicleKeyword reports whether the description mentions a vehicle at
// all, independent of category detection.
func HasVehicleKeyword(description string) bool {
	desc := strings.ToLower(description)
	for _, kw := range vehicleKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// ExtractVehicleMetadata pulls brand, model and plate number out of a
// description via dictionary and pattern lookup. Missing parts stay empty.
func ExtractVehicleMetadata(description string) *VehicleMetadata {
	vm := VehicleMetadata{}
	desc := strings.ToLower(description)

	for brand, models := range vehicleBrands {
		if !strings.Contains(desc, strings.ToLower(brand)) {
			continue
		}
		vm.Brand = brand
		for _, model := range models {
			if strings.Contains(desc, strings.ToLower(model)) {
				vm.Model = model
				break
			}
		}
		break
	}

	if m := plateRe.FindString(description); m != "" {
		vm.PlateNumber = strings.TrimSpace(m)
	}

	return &vm
}

package coa_core

import (
	"regexp"
	"strings"
)

// Descriptions shaped like product identifiers must never become ledger
// accounts. Matching is whole-string and case-insensitive.
var blacklistPatterns = []*regexp.Regexp{
	// vehicle plates, eg "B 1234 ABC" or "AB1234CD"
	regexp.MustCompile(`(?i)^[a-z]{1,3}\s*\d{1,4}\s*[a-z]{0,3}$`),
	// bare serial numbers
	regexp.MustCompile(`^\d{4,}$`),
	// tagged identifiers
	regexp.MustCompile(`(?i)^(sn|imei|sku)[-:]?\d+$`),
}

// IsBlacklisted reports whether the description looks like a product
// identifier, serial number or vehicle plate.
func IsBlacklisted(description string) bool {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return false
	}
	for _, pattern := range blacklistPatterns {
		if pattern.MatchString(desc) {
			return true
		}
	}
	return false
}

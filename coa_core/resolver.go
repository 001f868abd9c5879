package coa_core

import (
	"sort"
	"strings"
)

// ResolveResult is the outcome of category detection plus exact-name lookup
// over one directory snapshot.
type ResolveResult struct {
	Category   *CategoryRule
	ExactMatch *Account
}

// Resolve detects the financial category and searches the directory for an
// account whose name equals the whole description. Substring matching is
// deliberately not done here: "Bank" must not resolve to "Bank Syariah
// Indonesia".
func Resolve(description string, accounts []*Account, rules []*CategoryRule) *ResolveResult {
	res := ResolveResult{
		Category: DetectCategory(description, rules),
	}

	desc := strings.TrimSpace(description)

	matches := []*Account{}
	for _, acc := range accounts {
		if !acc.IsActive || !acc.IsPostable {
			continue
		}
		if strings.EqualFold(acc.Name, desc) {
			matches = append(matches, acc)
		}
	}

	if len(matches) == 0 {
		return &res
	}

	// prefer the most specific name. on exact equality names cannot differ
	// in length, kept for parity with the advisory substring path.
	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].Name) > len(matches[j].Name)
	})
	res.ExactMatch = matches[0]

	return &res
}

// FindAccountByName returns the first active postable account with the given
// name, case-insensitively.
func FindAccountByName(name string, accounts []*Account) *Account {
	for _, acc := range accounts {
		if !acc.IsActive || !acc.IsPostable {
			continue
		}
		if strings.EqualFold(acc.Name, name) {
			return acc
		}
	}
	return nil
}

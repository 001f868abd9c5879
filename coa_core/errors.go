package coa_core

import (
	"errors"
	"fmt"
)

// ErrDirectoryUnavailable means the caller could not supply an account
// directory snapshot. The engine cannot run without one.
var ErrDirectoryUnavailable = errors.New("account directory unavailable")

// ErrCodeRangeExhausted means the parent's thousand-block has no free code
// left.
var ErrCodeRangeExhausted = errors.New("account code range exhausted")

// InvalidDescriptionError rejects empty or blacklisted input. No suggestion
// is produced.
type InvalidDescriptionError struct {
	Description string
	Reason      string
}

func (e *InvalidDescriptionError) Error() string {
	return fmt.Sprintf("invalid description %q: %s", e.Description, e.Reason)
}

// InvalidParentCodeError means the allocator cannot derive a numeric block
// from the parent code.
type InvalidParentCodeError struct {
	Code string
}

func (e *InvalidParentCodeError) Error() string {
	return fmt.Sprintf("invalid parent account code %q", e.Code)
}

// MissingParentAccountError means no parent account could be resolved for an
// auto-create. A silent default would misfile the account.
type MissingParentAccountError struct {
	Category string
}

func (e *MissingParentAccountError) Error() string {
	if e.Category == "" {
		return "no parent account resolved for description"
	}
	return fmt.Sprintf("no parent account resolved for category %q", e.Category)
}

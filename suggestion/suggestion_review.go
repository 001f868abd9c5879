package suggestion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gudangkita/coa_service/coa_core"
	"gorm.io/gorm"
)

type SuggestionApproveRequest struct {
	ID uint `json:"id"`
}

type SuggestionApproveResponse struct {
	Data    *coa_core.Suggestion `json:"data"`
	Account *coa_core.Account    `json:"account"`
}

// SuggestionApprove transitions pending or needs_review to approved. For an
// auto_created suggestion the account is materialized here; a code collision
// with a concurrently approved suggestion is resolved by recomputing the code
// from a fresh snapshot and retrying once.
func (s *suggestionServiceImpl) SuggestionApprove(
	ctx context.Context,
	req *SuggestionApproveRequest,
) (*SuggestionApproveResponse, error) {
	var err error
	result := SuggestionApproveResponse{}

	err = s.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			var sug coa_core.Suggestion
			err := tx.First(&sug, req.ID).Error
			if err != nil {
				return err
			}

			if sug.Status != coa_core.StatusPending && sug.Status != coa_core.StatusNeedsReview {
				return fmt.Errorf("suggestion %d already %s", sug.ID, sug.Status)
			}

			switch sug.ActionTaken {
			case coa_core.ActionReused:
				acc, err := s.reusedAccount(tx, &sug)
				if err != nil {
					return err
				}
				result.Account = acc
			case coa_core.ActionAutoCreated, coa_core.ActionNeedsReview:
				acc, err := s.materializeAccount(tx, &sug)
				if err != nil {
					return err
				}
				result.Account = acc
				sug.SelectedAccountCode = acc.Code
			default:
				return fmt.Errorf("suggestion %d has no action", sug.ID)
			}

			sug.Status = coa_core.StatusApproved
			sug.Reviewed = time.Now()

			err = tx.Save(&sug).Error
			if err != nil {
				return err
			}

			result.Data = &sug
			return nil
		})

	if err != nil {
		return &result, err
	}

	s.invalidateDirectory()
	return &result, nil
}

func (s *suggestionServiceImpl) reusedAccount(tx *gorm.DB, sug *coa_core.Suggestion) (*coa_core.Account, error) {
	var acc coa_core.Account
	err := tx.
		Model(&coa_core.Account{}).
		Where("code = ?", sug.SelectedAccountCode).
		First(&acc).
		Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("reused account %s no longer exists", sug.SelectedAccountCode)
	}
	if err != nil {
		return nil, err
	}

	if !acc.IsActive || !acc.IsPostable {
		return nil, fmt.Errorf("reused account %s is not active and postable", acc.Code)
	}

	return &acc, nil
}

func (s *suggestionServiceImpl) materializeAccount(tx *gorm.DB, sug *coa_core.Suggestion) (*coa_core.Account, error) {
	if sug.ParentAccount == "" {
		return nil, &coa_core.MissingParentAccountError{Category: sug.FinancialCategory}
	}
	if sug.SuggestedAccountName == "" {
		return nil, fmt.Errorf("suggestion %d has no account name", sug.ID)
	}

	code := sug.SelectedAccountCode
	if code == "" {
		// needs_review suggestions skip allocation at creation time
		fresh, err := s.freshCode(tx, sug.ParentAccount)
		if err != nil {
			return nil, err
		}
		code = fresh
	}

	// savepoint around the insert so a code collision does not abort the
	// outer transaction
	var acc *coa_core.Account
	err := tx.Transaction(func(tx *gorm.DB) error {
		var err error
		acc, err = s.createAccount(tx, sug, code)
		return err
	})
	if err == nil {
		return acc, nil
	}

	// allocation is advisory, the code may have been taken since the
	// suggestion was computed. recompute once from current state.
	code, ferr := s.freshCode(tx, sug.ParentAccount)
	if ferr != nil {
		return nil, ferr
	}

	return s.createAccount(tx, sug, code)
}

func (s *suggestionServiceImpl) freshCode(tx *gorm.DB, parentCode string) (string, error) {
	// deactivated accounts keep their code reserved, so the scan covers
	// every row, not just the active snapshot.
	accounts := []*coa_core.Account{}
	err := tx.
		Model(&coa_core.Account{}).
		Find(&accounts).
		Error
	if err != nil {
		return "", err
	}

	return coa_core.NextCode(parentCode, accounts)
}

func (s *suggestionServiceImpl) createAccount(tx *gorm.DB, sug *coa_core.Suggestion, code string) (*coa_core.Account, error) {
	class, _, err := coa_core.ParseAccountCode(code)
	if err != nil {
		return nil, err
	}

	acc := coa_core.Account{
		Code:       code,
		Name:       sug.SuggestedAccountName,
		Class:      class,
		ParentCode: sug.ParentAccount,
		IsActive:   true,
		IsPostable: true,
		Created:    time.Now(),
	}

	err = tx.Create(&acc).Error
	if err != nil {
		return nil, err
	}

	return &acc, nil
}

type SuggestionRejectRequest struct {
	ID uint `json:"id"`
}

type SuggestionRejectResponse struct {
	Data *coa_core.Suggestion `json:"data"`
}

func (s *suggestionServiceImpl) SuggestionReject(
	ctx context.Context,
	req *SuggestionRejectRequest,
) (*SuggestionRejectResponse, error) {
	var err error
	result := SuggestionRejectResponse{}

	err = s.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			var sug coa_core.Suggestion
			err := tx.First(&sug, req.ID).Error
			if err != nil {
				return err
			}

			if sug.Status != coa_core.StatusPending && sug.Status != coa_core.StatusNeedsReview {
				return fmt.Errorf("suggestion %d already %s", sug.ID, sug.Status)
			}

			sug.Status = coa_core.StatusRejected
			sug.Reviewed = time.Now()

			err = tx.Save(&sug).Error
			if err != nil {
				return err
			}

			result.Data = &sug
			return nil
		})

	return &result, err
}

package coa_service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gudangkita/coa_service/coa_core"
	"gorm.io/gorm"
)

func NewAccountService(db *gorm.DB) *accountServiceImpl {
	return &accountServiceImpl{
		db: db,
	}
}

type accountServiceImpl struct {
	db *gorm.DB
}

type AccountCreateRequest struct {
	Code       string                `json:"code"`
	Name       string                `json:"name"`
	Class      coa_core.AccountClass `json:"class"`
	ParentCode string                `json:"parent_code"`
	IsPostable bool                  `json:"is_postable"`
}

type AccountCreateResponse struct {
	Data *coa_core.Account `json:"data"`
}

// AccountCreate is the manual administration path. The engine's auto-create
// path goes through suggestion approval instead.
func (a *accountServiceImpl) AccountCreate(
	ctx context.Context,
	req *AccountCreateRequest,
) (*AccountCreateResponse, error) {
	var err error
	result := AccountCreateResponse{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return &result, errors.New("account name must set")
	}

	class, _, err := coa_core.ParseAccountCode(req.Code)
	if err != nil {
		return &result, err
	}
	if req.Class != 0 && req.Class != class {
		return &result, fmt.Errorf("account class %s does not match code prefix %s", req.Class, class)
	}

	if req.ParentCode != "" {
		if _, _, err := coa_core.ParseAccountCode(req.ParentCode); err != nil {
			return &result, err
		}
	}

	err = a.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			var count int64
			err := tx.
				Model(&coa_core.Account{}).
				Where("code = ?", req.Code).
				Count(&count).
				Error
			if err != nil {
				return err
			}
			if count != 0 {
				return fmt.Errorf("account code %s already exists", req.Code)
			}

			acc := coa_core.Account{
				Code:       req.Code,
				Name:       name,
				Class:      class,
				ParentCode: req.ParentCode,
				IsActive:   true,
				IsPostable: req.IsPostable,
				Created:    time.Now(),
			}

			err = tx.Create(&acc).Error
			if err != nil {
				return err
			}

			result.Data = &acc
			return nil
		})

	return &result, err
}

type AccountListRequest struct {
	Class        coa_core.AccountClass `json:"class"`
	PostableOnly bool                  `json:"postable_only"`
	ActiveOnly   bool                  `json:"active_only"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

type AccountListResponse struct {
	Data      []*coa_core.Account `json:"data"`
	TotalItem int64               `json:"total_item"`
}

func (a *accountServiceImpl) AccountList(
	ctx context.Context,
	req *AccountListRequest,
) (*AccountListResponse, error) {
	var err error
	result := AccountListResponse{
		Data: []*coa_core.Account{},
	}

	if req.Limit == 0 {
		req.Limit = 100
	}
	if req.Page == 0 {
		req.Page = 1
	}

	query := a.db.
		WithContext(ctx).
		Model(&coa_core.Account{})

	if req.Class != 0 {
		query = query.Where("class = ?", req.Class)
	}
	if req.PostableOnly {
		query = query.Where("is_postable = ?", true)
	}
	if req.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	err = query.Count(&result.TotalItem).Error
	if err != nil {
		return &result, err
	}

	err = query.
		Order("code").
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		Find(&result.Data).
		Error

	return &result, err
}

type AccountDeactivateRequest struct {
	ID uint `json:"id"`
}

type AccountDeactivateResponse struct {
	Data *coa_core.Account `json:"data"`
}

// AccountDeactivate excludes an account from matching and allocation.
// Accounts are never deleted.
func (a *accountServiceImpl) AccountDeactivate(
	ctx context.Context,
	req *AccountDeactivateRequest,
) (*AccountDeactivateResponse, error) {
	var err error
	result := AccountDeactivateResponse{}

	err = a.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			var acc coa_core.Account
			err := tx.First(&acc, req.ID).Error
			if err != nil {
				return err
			}

			acc.IsActive = false
			err = tx.Save(&acc).Error
			if err != nil {
				return err
			}

			result.Data = &acc
			return nil
		})

	return &result, err
}

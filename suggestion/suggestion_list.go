package suggestion

import (
	"context"

	"github.com/gudangkita/coa_service/coa_core"
)

type SuggestionListRequest struct {
	Status coa_core.SuggestionStatus `json:"status"`
	Page   int                       `json:"page"`
	Limit  int                       `json:"limit"`
}

type PageInfo struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	TotalItem int64 `json:"total_item"`
}

type SuggestionListResponse struct {
	Data     []*coa_core.Suggestion `json:"data"`
	PageInfo *PageInfo              `json:"page_info"`
}

func (s *suggestionServiceImpl) SuggestionList(
	ctx context.Context,
	req *SuggestionListRequest,
) (*SuggestionListResponse, error) {
	var err error
	result := SuggestionListResponse{
		Data:     []*coa_core.Suggestion{},
		PageInfo: &PageInfo{},
	}

	if req.Limit == 0 {
		req.Limit = 100
	}
	if req.Page == 0 {
		req.Page = 1
	}

	db := s.db.WithContext(ctx)

	query := db.Model(&coa_core.Suggestion{})
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	err = query.Count(&result.PageInfo.TotalItem).Error
	if err != nil {
		return &result, err
	}

	err = query.
		Order("id desc").
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		Find(&result.Data).
		Error

	result.PageInfo.Page = req.Page
	result.PageInfo.Limit = req.Limit

	return &result, err
}

package suggestion

import (
	"context"

	"github.com/google/uuid"
	"github.com/gudangkita/coa_service/coa_core"
)

type SuggestionCreateRequest struct {
	Description string `json:"description"`
}

type SuggestionCreateResponse struct {
	Data *coa_core.Suggestion `json:"data"`
}

// SuggestionCreate runs the engine over the current directory snapshot and
// persists the resulting suggestion as pending or needs_review. Errors from
// the engine surface to the caller; nothing partial is stored.
func (s *suggestionServiceImpl) SuggestionCreate(
	ctx context.Context,
	req *SuggestionCreateRequest,
) (*SuggestionCreateResponse, error) {
	var err error
	result := SuggestionCreateResponse{}

	accounts, err := s.dir.Snapshot(ctx)
	if err != nil {
		return &result, err
	}

	sug, err := s.engine.Suggest(ctx, req.Description, accounts)
	if err != nil {
		return &result, err
	}

	sug.RequestID = uuid.NewString()

	err = s.db.
		WithContext(ctx).
		Create(sug).
		Error

	if err != nil {
		return &result, err
	}

	result.Data = sug
	return &result, nil
}

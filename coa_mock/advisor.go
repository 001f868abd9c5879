package coa_mock

import (
	"context"

	"github.com/gudangkita/coa_service/coa_core"
)

// StaticAdvisor returns a fixed advice, standing in for the classification
// provider in tests.
type StaticAdvisor struct {
	Advice *coa_core.Advice
	Err    error

	// LastDescription records the most recent call for assertions.
	LastDescription string
}

// Advise implements coa_core.Advisor.
func (s *StaticAdvisor) Advise(_ context.Context, description string, _ []string) (*coa_core.Advice, error) {
	s.LastDescription = description
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Advice, nil
}

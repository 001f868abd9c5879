package suggestion

import (
	"github.com/gudangkita/coa_service/coa_core"
	"github.com/gudangkita/coa_service/directory"
	"gorm.io/gorm"
)

// Invalidator is implemented by cached directory providers.
type Invalidator interface {
	Invalidate() error
}

func NewSuggestionService(
	db *gorm.DB,
	engine *coa_core.Engine,
	dir directory.Provider,
) *suggestionServiceImpl {
	return &suggestionServiceImpl{
		db:     db,
		engine: engine,
		dir:    dir,
	}
}

type suggestionServiceImpl struct {
	db     *gorm.DB
	engine *coa_core.Engine
	dir    directory.Provider
}

func (s *suggestionServiceImpl) invalidateDirectory() {
	if inv, ok := s.dir.(Invalidator); ok {
		// best effort, stale cache only delays the next snapshot
		_ = inv.Invalidate()
	}
}

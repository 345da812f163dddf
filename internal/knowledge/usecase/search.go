package usecase

import (
	"context"
	"strings"

	"travel-assistant/internal/knowledge"
	"travel-assistant/pkg/textnorm"
)

// Search queries the primary backend and degrades to the keyword fallback
// on error. A destination missing from the base is folded into the query
// text instead of being used as a filter.
func (uc *implUseCase) Search(ctx context.Context, opt knowledge.SearchOptions) ([]knowledge.SearchResult, error) {
	opt.Query = strings.TrimSpace(opt.Query)
	if opt.Query == "" {
		return nil, knowledge.ErrEmptyQuery
	}
	if opt.Limit <= 0 {
		opt.Limit = uc.cfg.TopK
	}
	if opt.Destination != "" {
		dest := textnorm.Normalize(opt.Destination)
		if _, ok := uc.base.Destination(dest); ok {
			opt.Destination = dest
		} else {
			opt.Query = opt.Query + " " + opt.Destination
			opt.Destination = ""
		}
	}

	if uc.primary != nil {
		results, err := uc.primary.Search(ctx, opt)
		if err == nil {
			return results, nil
		}
		uc.l.Warnf(ctx, "%s: %s failed, using %s: %v", knowledge.LogPrefixSearch, uc.primary.Name(), uc.fallback.Name(), err)
	}

	return uc.fallback.Search(ctx, opt)
}

// Destination returns the curated entry for name.
func (uc *implUseCase) Destination(name string) (knowledge.Destination, bool) {
	return uc.base.Destination(name)
}

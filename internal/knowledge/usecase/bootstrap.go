package usecase

import (
	"context"
	"fmt"

	"travel-assistant/internal/knowledge"
)

// Bootstrap loads the curated documents into the fallback and, when it is
// still empty, into the primary backend.
func (uc *implUseCase) Bootstrap(ctx context.Context) error {
	docs := uc.base.Documents(uc.cfg.ChunkSize, uc.cfg.ChunkOverlap)

	if err := uc.fallback.Index(ctx, docs); err != nil {
		return fmt.Errorf("%s: index %s: %w", knowledge.LogPrefixIndex, uc.fallback.Name(), err)
	}

	if uc.primary == nil {
		uc.l.Infof(ctx, "%s: %d documents indexed (keyword search only)", knowledge.LogPrefixIndex, len(docs))
		return nil
	}

	count, err := uc.primary.Count(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "%s: count %s: %v", knowledge.LogPrefixIndex, uc.primary.Name(), err)
		return nil
	}
	if count > 0 {
		uc.l.Infof(ctx, "%s: %s already holds %d documents", knowledge.LogPrefixIndex, uc.primary.Name(), count)
		return nil
	}

	if err := uc.primary.Index(ctx, docs); err != nil {
		// Search still works through the fallback.
		uc.l.Errorf(ctx, "%s: index %s: %v", knowledge.LogPrefixIndex, uc.primary.Name(), err)
		return nil
	}
	uc.l.Infof(ctx, "%s: %d documents indexed into %s", knowledge.LogPrefixIndex, len(docs), uc.primary.Name())
	return nil
}

// Package static is the in-process keyword backend. It needs no network
// and is always available as the fallback.
package static

import (
	"context"
	"sort"
	"sync"

	"travel-assistant/internal/knowledge"
	"travel-assistant/internal/knowledge/repository"
	"travel-assistant/pkg/textnorm"
)

type implRepository struct {
	mu   sync.RWMutex
	docs []indexed
}

type indexed struct {
	doc    knowledge.Document
	tokens map[string]struct{}
}

// New creates an empty keyword repository.
func New() repository.Repository {
	return &implRepository{}
}

func (r *implRepository) Name() string { return "static" }

func (r *implRepository) Index(ctx context.Context, docs []knowledge.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]int, len(r.docs))
	for i, d := range r.docs {
		seen[d.doc.ID] = i
	}
	for _, d := range docs {
		entry := indexed{doc: d, tokens: tokenSet(d.Content)}
		if i, ok := seen[d.ID]; ok {
			r.docs[i] = entry
			continue
		}
		seen[d.ID] = len(r.docs)
		r.docs = append(r.docs, entry)
	}
	return nil
}

// Search scores by the share of query tokens present in the document. With a
// destination or type filter, zero-score documents are still returned in
// index order so callers always get candidates for the filter.
func (r *implRepository) Search(ctx context.Context, opt knowledge.SearchOptions) ([]knowledge.SearchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := opt.Limit
	if limit <= 0 {
		limit = knowledge.DefaultTopK
	}
	query := tokenSet(opt.Query)
	filtered := opt.Destination != "" || opt.Type != ""

	var results []knowledge.SearchResult
	for _, d := range r.docs {
		if opt.Destination != "" && d.doc.Destination != opt.Destination {
			continue
		}
		if opt.Type != "" && d.doc.Type != opt.Type {
			continue
		}
		score := overlap(query, d.tokens)
		if score == 0 && !filtered {
			continue
		}
		results = append(results, knowledge.SearchResult{Document: d.doc, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs), nil
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range textnorm.Tokens(textnorm.Fold(s)) {
		set[t] = struct{}{}
	}
	return set
}

func overlap(query, doc map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	hits := 0
	for t := range query {
		if _, ok := doc[t]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(query))
}

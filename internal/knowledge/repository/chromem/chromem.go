// Package chromem stores knowledge in an embedded chromem-go database.
package chromem

import (
	"context"
	"fmt"

	"github.com/philippgille/chromem-go"

	"travel-assistant/internal/knowledge"
	"travel-assistant/internal/knowledge/repository"
	pkgLog "travel-assistant/pkg/log"
	"travel-assistant/pkg/voyage"
)

// Config configures the chromem backend.
type Config struct {
	// PersistPath enables on-disk persistence when set.
	PersistPath string
	Compress    bool
	Collection  string
}

type implRepository struct {
	collection *chromem.Collection
	embedder   voyage.IVoyage
	l          pkgLog.Logger
}

// New opens (or creates) the collection.
func New(cfg Config, embedder voyage.IVoyage, l pkgLog.Logger) (repository.Repository, error) {
	var (
		db  *chromem.DB
		err error
	)
	if cfg.PersistPath != "" {
		db, err = chromem.NewPersistentDB(cfg.PersistPath, cfg.Compress)
		if err != nil {
			return nil, fmt.Errorf("chromem repository: open %s: %w", cfg.PersistPath, err)
		}
	} else {
		db = chromem.NewDB()
	}

	collection, err := db.GetOrCreateCollection(cfg.Collection, nil, queryEmbeddingFunc(embedder))
	if err != nil {
		return nil, fmt.Errorf("chromem repository: collection %s: %w", cfg.Collection, err)
	}

	return &implRepository{collection: collection, embedder: embedder, l: l}, nil
}

func (r *implRepository) Name() string { return "chromem" }

func (r *implRepository) Index(ctx context.Context, docs []knowledge.Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Content
	}
	vectors, err := r.embedder.Embed(ctx, texts, voyage.InputDocument)
	if err != nil {
		return fmt.Errorf("chromem repository: embed documents: %w", err)
	}

	chromemDocs := make([]chromem.Document, len(docs))
	for i, d := range docs {
		chromemDocs[i] = chromem.Document{
			ID:      d.ID,
			Content: d.Content,
			Metadata: map[string]string{
				repository.MetaType:        d.Type,
				repository.MetaDestination: d.Destination,
			},
			Embedding: vectors[i],
		}
	}

	concurrency := 1
	if len(chromemDocs) > 10 {
		concurrency = 4
	}
	if err := r.collection.AddDocuments(ctx, chromemDocs, concurrency); err != nil {
		return fmt.Errorf("chromem repository: add documents: %w", err)
	}

	r.l.Infof(ctx, "chromem repository: indexed %d documents", len(docs))
	return nil
}

func (r *implRepository) Search(ctx context.Context, opt knowledge.SearchOptions) ([]knowledge.SearchResult, error) {
	if opt.Query == "" {
		return nil, knowledge.ErrEmptyQuery
	}

	// chromem rejects n larger than the collection.
	n := opt.Limit
	if n <= 0 {
		n = knowledge.DefaultTopK
	}
	if total := r.collection.Count(); n > total {
		n = total
	}
	if n == 0 {
		return nil, nil
	}

	vectors, err := r.embedder.Embed(ctx, []string{opt.Query}, voyage.InputQuery)
	if err != nil {
		return nil, fmt.Errorf("chromem repository: embed query: %w", err)
	}

	where := map[string]string{}
	if opt.Type != "" {
		where[repository.MetaType] = opt.Type
	}
	if opt.Destination != "" {
		where[repository.MetaDestination] = opt.Destination
	}
	if len(where) == 0 {
		where = nil
	}

	found, err := r.collection.QueryEmbedding(ctx, vectors[0], n, where, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem repository: query: %w", err)
	}

	results := make([]knowledge.SearchResult, 0, len(found))
	for _, f := range found {
		results = append(results, knowledge.SearchResult{
			Document: knowledge.Document{
				ID:          f.ID,
				Content:     f.Content,
				Type:        f.Metadata[repository.MetaType],
				Destination: f.Metadata[repository.MetaDestination],
			},
			Score: float64(f.Similarity),
		})
	}
	return results, nil
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	return r.collection.Count(), nil
}

func queryEmbeddingFunc(embedder voyage.IVoyage) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		vectors, err := embedder.Embed(ctx, []string{text}, voyage.InputQuery)
		if err != nil {
			return nil, err
		}
		return vectors[0], nil
	}
}

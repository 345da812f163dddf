// Package qdrant stores knowledge in a remote Qdrant collection.
package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"travel-assistant/internal/knowledge"
	"travel-assistant/internal/knowledge/repository"
	pkgLog "travel-assistant/pkg/log"
	pkgQdrant "travel-assistant/pkg/qdrant"
	"travel-assistant/pkg/voyage"
)

// pointNamespace derives stable point IDs from document IDs.
var pointNamespace = uuid.MustParse("0d3c8a5e-6f0e-4c61-9a53-3b0f3f6f2a71")

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// New creates a Qdrant-backed repository.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, vectorSize int, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}

func (r *implRepository) Name() string { return "qdrant" }

func (r *implRepository) Index(ctx context.Context, docs []knowledge.Document) error {
	if len(docs) == 0 {
		return nil
	}

	if err := r.client.EnsureCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    r.collectionName,
		Vectors: pkgQdrant.VectorConfig{Size: r.vectorSize, Distance: pkgQdrant.DistanceCosine},
	}); err != nil {
		return fmt.Errorf("qdrant repository: ensure collection: %w", err)
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Content
	}
	vectors, err := r.embedder.Embed(ctx, texts, voyage.InputDocument)
	if err != nil {
		return fmt.Errorf("qdrant repository: embed documents: %w", err)
	}

	points := make([]pkgQdrant.Point, len(docs))
	for i, d := range docs {
		points[i] = pkgQdrant.Point{
			ID:     PointID(d.ID),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				repository.MetaDocID:       d.ID,
				repository.MetaContent:     d.Content,
				repository.MetaType:        d.Type,
				repository.MetaDestination: d.Destination,
			},
		}
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		return fmt.Errorf("qdrant repository: upsert: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: indexed %d documents into %s", len(docs), r.collectionName)
	return nil
}

func (r *implRepository) Search(ctx context.Context, opt knowledge.SearchOptions) ([]knowledge.SearchResult, error) {
	if opt.Query == "" {
		return nil, knowledge.ErrEmptyQuery
	}
	limit := opt.Limit
	if limit <= 0 {
		limit = knowledge.DefaultTopK
	}

	vectors, err := r.embedder.Embed(ctx, []string{opt.Query}, voyage.InputQuery)
	if err != nil {
		return nil, fmt.Errorf("qdrant repository: embed query: %w", err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       limit,
		WithPayload: true,
		Filter:      buildFilter(opt),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant repository: search: %w", err)
	}

	results := make([]knowledge.SearchResult, 0, len(resp.Result))
	for _, scored := range resp.Result {
		content, ok := scored.Payload[repository.MetaContent].(string)
		if !ok {
			r.l.Warnf(ctx, "qdrant repository: point %v has no content payload", scored.ID)
			continue
		}
		results = append(results, knowledge.SearchResult{
			Document: knowledge.Document{
				ID:          payloadString(scored.Payload, repository.MetaDocID),
				Content:     content,
				Type:        payloadString(scored.Payload, repository.MetaType),
				Destination: payloadString(scored.Payload, repository.MetaDestination),
			},
			Score: scored.Score,
		})
	}
	return results, nil
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	exists, err := r.client.CollectionExists(ctx, r.collectionName)
	if err != nil || !exists {
		return 0, err
	}
	return r.client.CountPoints(ctx, r.collectionName)
}

// PointID converts a document ID into a deterministic UUID.
func PointID(docID string) string {
	return uuid.NewSHA1(pointNamespace, []byte(docID)).String()
}

func buildFilter(opt knowledge.SearchOptions) map[string]interface{} {
	var must []map[string]interface{}
	if opt.Type != "" {
		must = append(must, matchCondition(repository.MetaType, opt.Type))
	}
	if opt.Destination != "" {
		must = append(must, matchCondition(repository.MetaDestination, opt.Destination))
	}
	if len(must) == 0 {
		return nil
	}
	return map[string]interface{}{"must": must}
}

func matchCondition(key, value string) map[string]interface{} {
	return map[string]interface{}{
		"key":   key,
		"match": map[string]interface{}{"value": value},
	}
}

func payloadString(payload map[string]interface{}, key string) string {
	s, _ := payload[key].(string)
	return s
}

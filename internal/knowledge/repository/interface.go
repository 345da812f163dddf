package repository

import (
	"context"

	"travel-assistant/internal/knowledge"
)

// Repository stores and searches knowledge documents.
type Repository interface {
	Index(ctx context.Context, docs []knowledge.Document) error
	Search(ctx context.Context, opt knowledge.SearchOptions) ([]knowledge.SearchResult, error)
	Count(ctx context.Context) (int, error)
	Name() string
}

// Metadata keys shared by the vector backends.
const (
	MetaType        = "type"
	MetaDestination = "destination"
	MetaContent     = "content"
	MetaDocID       = "doc_id"
)

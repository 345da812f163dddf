package usecase

import (
	"travel-assistant/internal/knowledge"
	"travel-assistant/internal/knowledge/repository"
	pkgLog "travel-assistant/pkg/log"
)

// Config tunes indexing and search.
type Config struct {
	ChunkSize    int
	ChunkOverlap int
	TopK         int
}

type implUseCase struct {
	l        pkgLog.Logger
	base     *knowledge.Base
	primary  repository.Repository
	fallback repository.Repository
	cfg      Config
}

var _ knowledge.UseCase = (*implUseCase)(nil)

// New creates the knowledge UseCase. primary may be nil, in which case only
// the fallback repository is used.
func New(l pkgLog.Logger, base *knowledge.Base, primary, fallback repository.Repository, cfg Config) knowledge.UseCase {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = knowledge.DefaultChunkSize
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = knowledge.DefaultChunkOverlap
	}
	if cfg.TopK <= 0 {
		cfg.TopK = knowledge.DefaultTopK
	}
	return &implUseCase{
		l:        l,
		base:     base,
		primary:  primary,
		fallback: fallback,
		cfg:      cfg,
	}
}

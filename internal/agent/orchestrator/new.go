package orchestrator

import (
	"fmt"
	"time"

	"travel-assistant/internal/agent/specialist"
	"travel-assistant/internal/extractor"
	"travel-assistant/internal/memory"
	"travel-assistant/internal/model"
	"travel-assistant/internal/router"
	pkgLog "travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

// Config wires the pipeline stages. Metrics may be nil.
type Config struct {
	Extractor   *extractor.Extractor
	Router      router.Router
	Specialists map[model.Intent]specialist.Specialist
	Store       memory.Store
	Metrics     *metrics.Metrics
	Location    *time.Location
	Now         func() time.Time
}

// Orchestrator turns one utterance into one reply: extract, classify,
// resolve against session memory, dispatch and remember.
type Orchestrator struct {
	extractor   *extractor.Extractor
	router      router.Router
	specialists map[model.Intent]specialist.Specialist
	store       memory.Store
	metrics     *metrics.Metrics
	loc         *time.Location
	now         func() time.Time
	locks       *sessionLocks
	l           pkgLog.Logger
}

func New(cfg Config, l pkgLog.Logger) (*Orchestrator, error) {
	switch {
	case cfg.Extractor == nil:
		return nil, fmt.Errorf("%w: extractor", ErrMissingDependency)
	case cfg.Router == nil:
		return nil, fmt.Errorf("%w: router", ErrMissingDependency)
	case cfg.Store == nil:
		return nil, fmt.Errorf("%w: session store", ErrMissingDependency)
	}
	for _, intent := range model.AllIntents {
		if cfg.Specialists[intent] == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoSpecialist, intent)
		}
	}

	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if l == nil {
		l = pkgLog.NewNop()
	}

	return &Orchestrator{
		extractor:   cfg.Extractor,
		router:      cfg.Router,
		specialists: cfg.Specialists,
		store:       cfg.Store,
		metrics:     cfg.Metrics,
		loc:         cfg.Location,
		now:         cfg.Now,
		locks:       newSessionLocks(),
		l:           l,
	}, nil
}

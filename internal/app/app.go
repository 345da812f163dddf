// Package app assembles the assistant from configuration. Both the HTTP
// server and the terminal chat build on it.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"travel-assistant/config"
	"travel-assistant/internal/agent"
	"travel-assistant/internal/agent/orchestrator"
	"travel-assistant/internal/agent/specialist"
	"travel-assistant/internal/agent/tools"
	"travel-assistant/internal/extractor"
	"travel-assistant/internal/knowledge"
	"travel-assistant/internal/knowledge/repository"
	kchromem "travel-assistant/internal/knowledge/repository/chromem"
	kqdrant "travel-assistant/internal/knowledge/repository/qdrant"
	"travel-assistant/internal/knowledge/repository/static"
	knowledgeUC "travel-assistant/internal/knowledge/usecase"
	"travel-assistant/internal/memory"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/datemath"
	"travel-assistant/pkg/llmprovider"
	pkgLog "travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
	pkgQdrant "travel-assistant/pkg/qdrant"
	"travel-assistant/pkg/serpapi"
	"travel-assistant/pkg/voyage"
	"travel-assistant/pkg/weather"
)

// App is a fully wired assistant.
type App struct {
	Orchestrator *orchestrator.Orchestrator
	Store        memory.Store
	Knowledge    knowledge.UseCase
	Metrics      *metrics.Metrics
	Location     *time.Location

	// ReadyCheck reports whether external state (Redis) is reachable.
	ReadyCheck func() error

	closers []func() error
}

// Close releases the connections opened by Build.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Build wires every component named in cfg. Missing API keys disable the
// matching client; the assistant then answers from static data.
func Build(ctx context.Context, cfg *config.Config, l pkgLog.Logger) (*App, error) {
	a := &App{Metrics: metrics.New()}

	dates, err := datemath.NewParser(cfg.NLU.Timezone)
	if err != nil {
		l.Warnf(ctx, LogMsgInvalidTimezone, cfg.NLU.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}
	a.Location = dates.Location()

	llm := buildLLM(ctx, cfg, l, a.Metrics)
	weatherClient, hotelClient := buildClients(ctx, cfg, l)

	kb, err := buildKnowledge(ctx, cfg, l)
	if err != nil {
		return nil, err
	}
	a.Knowledge = kb

	ext, err := extractor.New(extractor.Config{Dates: dates, FuzzyThreshold: cfg.NLU.FuzzyThreshold})
	if err != nil {
		return nil, fmt.Errorf("%s: extractor: %w", LogPrefix, err)
	}

	var rt router.Router = router.New(l)
	if cfg.Router.LLMAssist && llm != nil {
		rt = router.NewLLMRouter(llm, l)
	}

	store, err := a.buildStore(ctx, cfg, l)
	if err != nil {
		return nil, err
	}
	a.Store = store

	now := time.Now
	var planTools []agent.Tool
	if weatherClient != nil {
		planTools = append(planTools, agent.InstrumentTool(tools.NewRealtimeWeatherTool(weatherClient, a.Location, l), a.Metrics))
	}
	planTools = append(planTools, agent.InstrumentTool(tools.NewSearchKnowledgeTool(kb), a.Metrics))
	if hotelClient != nil {
		planTools = append(planTools, agent.InstrumentTool(tools.NewSearchHotelsTool(hotelClient, now, l), a.Metrics))
	}

	specialists := specialist.NewAll(specialist.Deps{
		LLM:       llm,
		Knowledge: kb,
		Weather:   weatherClient,
		Hotels:    hotelClient,
		Location:  a.Location,
		Now:       now,
		Logger:    l,
	}, planTools...)

	orch, err := orchestrator.New(orchestrator.Config{
		Extractor:   ext,
		Router:      rt,
		Specialists: specialists,
		Store:       store,
		Metrics:     a.Metrics,
		Location:    a.Location,
		Now:         now,
	}, l)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("%s: orchestrator: %w", LogPrefix, err)
	}
	a.Orchestrator = orch

	l.Infof(ctx, LogMsgReady, cfg.Knowledge.Backend, cfg.Session.Store, llm != nil)
	return a, nil
}

// buildLLM returns nil when no provider could be initialised.
func buildLLM(ctx context.Context, cfg *config.Config, l pkgLog.Logger, m *metrics.Metrics) agent.Generator {
	providers, err := llmprovider.InitializeProviders(&cfg.LLM, l)
	if err != nil {
		l.Warnf(ctx, LogMsgLLMDisabled, err)
		return nil
	}
	mcfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		l.Warnf(ctx, LogMsgLLMDisabled, err)
		return nil
	}
	return agent.InstrumentGenerator(llmprovider.NewManager(providers, mcfg, l), m)
}

// buildClients returns untyped nil interfaces for disabled clients so that
// the specialists see them as absent.
func buildClients(ctx context.Context, cfg *config.Config, l pkgLog.Logger) (weather.IWeather, serpapi.IHotels) {
	var (
		w weather.IWeather
		h serpapi.IHotels
	)

	wc, err := weather.New(weather.Config{APIKey: cfg.Weather.APIKey, BaseURL: cfg.Weather.BaseURL, Timeout: cfg.Weather.Timeout})
	if err != nil {
		l.Warnf(ctx, LogMsgClientDisabled, "weather", err)
	} else {
		w = wc
	}

	sc, err := serpapi.New(serpapi.Config{APIKey: cfg.SerpApi.APIKey, BaseURL: cfg.SerpApi.BaseURL, Timeout: cfg.SerpApi.Timeout})
	if err != nil {
		l.Warnf(ctx, LogMsgClientDisabled, "serpapi", err)
	} else {
		h = sc
	}

	return w, h
}

func buildKnowledge(ctx context.Context, cfg *config.Config, l pkgLog.Logger) (knowledge.UseCase, error) {
	base, err := knowledge.LoadBase()
	if err != nil {
		return nil, fmt.Errorf("%s: knowledge base: %w", LogPrefix, err)
	}

	var primary repository.Repository
	if cfg.Knowledge.Backend != config.KnowledgeStatic {
		primary, err = buildVectorRepository(ctx, cfg, l)
		if err != nil {
			return nil, err
		}
	}

	uc := knowledgeUC.New(l, base, primary, static.New(), knowledgeUC.Config{
		ChunkSize:    cfg.Knowledge.ChunkSize,
		ChunkOverlap: cfg.Knowledge.ChunkOverlap,
		TopK:         cfg.Knowledge.TopK,
	})

	bctx, cancel := context.WithTimeout(ctx, DefaultBootstrapTimeout)
	defer cancel()
	if err := uc.Bootstrap(bctx); err != nil {
		l.Warnf(ctx, LogMsgBootstrapFailed, err)
	}
	return uc, nil
}

// buildVectorRepository returns nil, nil when the backend cannot embed.
func buildVectorRepository(ctx context.Context, cfg *config.Config, l pkgLog.Logger) (repository.Repository, error) {
	if cfg.Voyage.APIKey == "" {
		l.Warnf(ctx, LogMsgEmbedderMissing, cfg.Knowledge.Backend)
		return nil, nil
	}
	embedder, err := voyage.New(voyage.Config{APIKey: cfg.Voyage.APIKey, Model: cfg.Voyage.Model})
	if err != nil {
		return nil, fmt.Errorf("%s: voyage: %w", LogPrefix, err)
	}

	switch cfg.Knowledge.Backend {
	case config.KnowledgeQdrant:
		return kqdrant.New(pkgQdrant.NewClient(cfg.Qdrant.URL), embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, l), nil
	default:
		repo, err := kchromem.New(kchromem.Config{
			PersistPath: cfg.Knowledge.PersistPath,
			Compress:    true,
			Collection:  cfg.Knowledge.Collection,
		}, embedder, l)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogPrefix, err)
		}
		return repo, nil
	}
}

func (a *App) buildStore(ctx context.Context, cfg *config.Config, l pkgLog.Logger) (memory.Store, error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		a.ReadyCheck = func() error { return nil }
		return memory.NewMemoryStore(l, cfg.Session.MaxSessions, cfg.Session.TTL), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: redis %s: %w", LogPrefix, cfg.Redis.Addr, err)
	}
	a.closers = append(a.closers, rdb.Close)
	a.ReadyCheck = func() error {
		pctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return rdb.Ping(pctx).Err()
	}
	return memory.NewRedisStore(rdb, l, cfg.Session.TTL), nil
}

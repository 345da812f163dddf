package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Travel assistant specifics
	NLU       NLUConfig
	Router    RouterConfig
	Session   SessionConfig
	Redis     RedisConfig
	Knowledge KnowledgeConfig
	Weather   WeatherConfig
	SerpApi   SerpApiConfig
	Qdrant    QdrantConfig
	Voyage    VoyageConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// NLUConfig tunes entity extraction.
type NLUConfig struct {
	FuzzyThreshold int
	Timezone       string
}

// RouterConfig selects rule-only or LLM-assisted intent routing.
type RouterConfig struct {
	LLMAssist bool
}

type SessionConfig struct {
	Store       string // memory | redis
	TTL         time.Duration
	MaxSessions int
	HistoryDir  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KnowledgeConfig struct {
	Backend      string // static | chromem | qdrant
	PersistPath  string
	Collection   string
	TopK         int
	ChunkSize    int
	ChunkOverlap int
}

type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type SerpApiConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// LoadFile reads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// NLU & routing
	cfg.NLU.FuzzyThreshold = v.GetInt("nlu.fuzzy_threshold")
	cfg.NLU.Timezone = v.GetString("nlu.timezone")
	cfg.Router.LLMAssist = v.GetBool("router.llm_assist")

	// Sessions
	cfg.Session.Store = v.GetString("session.store")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")
	cfg.Session.HistoryDir = v.GetString("session.history_dir")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(v, v.GetString("redis.password"))
	cfg.Redis.DB = v.GetInt("redis.db")

	// Knowledge base
	cfg.Knowledge.Backend = v.GetString("knowledge.backend")
	cfg.Knowledge.PersistPath = v.GetString("knowledge.persist_path")
	cfg.Knowledge.Collection = v.GetString("knowledge.collection")
	cfg.Knowledge.TopK = v.GetInt("knowledge.top_k")
	cfg.Knowledge.ChunkSize = v.GetInt("knowledge.chunk_size")
	cfg.Knowledge.ChunkOverlap = v.GetInt("knowledge.chunk_overlap")

	// External APIs
	cfg.Weather.APIKey = expandEnvVar(v, v.GetString("weather.api_key"))
	if key := v.GetString("openweather_api_key"); key != "" {
		cfg.Weather.APIKey = key
	}
	cfg.Weather.BaseURL = v.GetString("weather.base_url")
	cfg.Weather.Timeout = v.GetDuration("weather.timeout")

	cfg.SerpApi.APIKey = expandEnvVar(v, v.GetString("serpapi.api_key"))
	if key := v.GetString("serpapi_api_key"); key != "" {
		cfg.SerpApi.APIKey = key
	}
	cfg.SerpApi.BaseURL = v.GetString("serpapi.base_url")
	cfg.SerpApi.Timeout = v.GetDuration("serpapi.timeout")

	cfg.Qdrant.URL = v.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = v.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = v.GetInt("qdrant.vector_size")
	if qdrantURL := v.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Voyage.APIKey = expandEnvVar(v, v.GetString("voyage.api_key"))
	cfg.Voyage.Model = v.GetString("voyage.model")
	if voyageKey := v.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Without providers the assistant answers from static fallbacks only.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, err
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)

	v.SetDefault("nlu.fuzzy_threshold", 99)
	v.SetDefault("nlu.timezone", "Asia/Ho_Chi_Minh")
	v.SetDefault("router.llm_assist", false)

	v.SetDefault("session.store", "memory")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.max_sessions", 1000)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("knowledge.backend", "static")
	v.SetDefault("knowledge.collection", "travel_knowledge")
	v.SetDefault("knowledge.top_k", 5)
	v.SetDefault("knowledge.chunk_size", 500)
	v.SetDefault("knowledge.chunk_overlap", 50)

	v.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("weather.timeout", "10s")
	v.SetDefault("serpapi.base_url", "https://serpapi.com/search.json")
	v.SetDefault("serpapi.timeout", "15s")

	v.SetDefault("qdrant.collection_name", "travel_knowledge")
	v.SetDefault("qdrant.vector_size", 1024)
	v.SetDefault("voyage.model", "voyage-3")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

func validate(cfg *Config) error {
	switch cfg.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("session.store: unknown store %q", cfg.Session.Store)
	}
	switch cfg.Knowledge.Backend {
	case KnowledgeStatic, KnowledgeChromem, KnowledgeQdrant:
	default:
		return fmt.Errorf("knowledge.backend: unknown backend %q", cfg.Knowledge.Backend)
	}
	if cfg.Knowledge.ChunkOverlap >= cfg.Knowledge.ChunkSize {
		return fmt.Errorf("knowledge.chunk_overlap must be smaller than knowledge.chunk_size")
	}
	if cfg.NLU.FuzzyThreshold < 0 || cfg.NLU.FuzzyThreshold > 100 {
		return fmt.Errorf("nlu.fuzzy_threshold must be within 0..100")
	}
	return nil
}

// Store and backend names.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	KnowledgeStatic  = "static"
	KnowledgeChromem = "chromem"
	KnowledgeQdrant  = "qdrant"
)

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

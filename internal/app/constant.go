package app

import "time"

const (
	LogPrefix = "app.Build"

	// DefaultBootstrapTimeout bounds knowledge indexing at startup.
	DefaultBootstrapTimeout = 2 * time.Minute

	LogMsgLLMDisabled     = "LLM providers unavailable, answering from static data: %v"
	LogMsgClientDisabled  = "%s client disabled: %v"
	LogMsgEmbedderMissing = "knowledge backend %s needs a Voyage API key, using the static base"
	LogMsgBootstrapFailed = "knowledge bootstrap failed, searches fall back to the static base: %v"
	LogMsgInvalidTimezone = "invalid timezone %q, falling back to UTC: %v"
	LogMsgReady           = "assistant ready: knowledge=%s sessions=%s llm=%t"
)

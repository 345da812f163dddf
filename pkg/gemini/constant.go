package gemini

import "time"

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	headerAPIKey = "x-goog-api-key"

	// maxErrorBody caps how much of a failed response is kept in APIError.
	maxErrorBody = 2048
)

// Finish reasons that mean the model refused to answer.
const (
	FinishReasonSafety     = "SAFETY"
	FinishReasonRecitation = "RECITATION"
	FinishReasonBlocklist  = "BLOCKLIST"
)

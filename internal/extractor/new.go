package extractor

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"travel-assistant/pkg/datemath"
)

// Config configures an Extractor.
type Config struct {
	// Dates resolves relative expressions; its timezone is the reference
	// timezone for "today".
	Dates *datemath.Parser

	// Now returns the reference instant. Defaults to time.Now.
	Now func() time.Time

	// FuzzyThreshold is the minimum 0–100 similarity for the fuzzy
	// destination pass. Zero means DefaultFuzzyThreshold.
	FuzzyThreshold int
}

// Extractor pulls entities out of raw utterances. It holds no mutable
// state and is safe for concurrent use.
type Extractor struct {
	dates          *datemath.Parser
	natural        *when.Parser
	now            func() time.Time
	fuzzyThreshold int
}

// New creates an Extractor. A nil Dates parser falls back to DefaultTimezone.
func New(cfg Config) (*Extractor, error) {
	dates := cfg.Dates
	if dates == nil {
		p, err := datemath.NewParser(DefaultTimezone)
		if err != nil {
			return nil, err
		}
		dates = p
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	threshold := cfg.FuzzyThreshold
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}

	natural := when.New(nil)
	natural.Add(en.All...)
	natural.Add(common.All...)

	return &Extractor{
		dates:          dates,
		natural:        natural,
		now:            now,
		fuzzyThreshold: threshold,
	}, nil
}

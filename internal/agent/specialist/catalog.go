package specialist

import (
	"context"
	"fmt"

	"travel-assistant/internal/knowledge"
)

// catalog answers "give me N things at X" requests from knowledge snippets
// and the LLM. Food and Location differ only in their texts.
type catalog struct {
	d              Deps
	name           string
	logPrefix      string
	docType        string
	prompt         string
	fallbackHeader string
	needsDest      string
}

// Food recommends local dishes.
type Food struct{ catalog }

// Location recommends places to visit.
type Location struct{ catalog }

// NewFood creates the food specialist.
func NewFood(d Deps) *Food {
	return &Food{catalog{
		d:              d.normalize(),
		name:           NameFood,
		logPrefix:      LogPrefixFood,
		docType:        knowledge.TypeFood,
		prompt:         PromptFood,
		fallbackHeader: FallbackFoodHeader,
		needsDest:      MsgFoodNeedsDestination,
	}}
}

// NewLocation creates the sightseeing specialist.
func NewLocation(d Deps) *Location {
	return &Location{catalog{
		d:              d.normalize(),
		name:           NameLocation,
		logPrefix:      LogPrefixLocation,
		docType:        knowledge.TypeLocation,
		prompt:         PromptLocation,
		fallbackHeader: FallbackLocationHeader,
		needsDest:      MsgLocationNeedsDestination,
	}}
}

func (c *catalog) Name() string { return c.name }

func (c *catalog) Handle(ctx context.Context, req Request) (Result, error) {
	r := req.Resolved
	if r.Destination == "" {
		return Result{Text: c.needsDest, Clarification: true}, nil
	}

	n := quantity(req.Quantity)
	dest := title(r.Destination)
	refs := references(ctx, c.d.Knowledge, c.d.Logger, searchQuery(r, r.Destination), r.Destination, c.docType, n)

	prompt := fmt.Sprintf(c.prompt, r.Query, dest, n, contextBlock(r), bulletList(refs), n, n, dest)
	text, err := generate(ctx, c.d.LLM, req.TimeContext, prompt, CatalogTemperature)
	if err == nil {
		return Result{Text: text}, nil
	}

	c.d.Logger.Warnf(ctx, "%s: LLM unavailable, answering from knowledge: %v", c.logPrefix, err)
	return Result{Text: c.fallback(n, dest, refs), Degraded: true}, nil
}

func (c *catalog) fallback(n int, dest string, refs []string) string {
	if len(refs) == 0 {
		return fmt.Sprintf(FallbackCatalogEmpty, dest)
	}
	return fmt.Sprintf(c.fallbackHeader, len(refs), dest) + "\n\n" + numberedList(refs)
}

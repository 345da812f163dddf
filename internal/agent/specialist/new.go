package specialist

import (
	"time"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/knowledge"
	"travel-assistant/internal/model"
	pkgLog "travel-assistant/pkg/log"
	"travel-assistant/pkg/serpapi"
	"travel-assistant/pkg/weather"
)

// Deps are the collaborators shared by the specialists. Every field except
// the logger may be nil; the affected specialists then answer from static
// data.
type Deps struct {
	LLM       agent.Generator
	Knowledge knowledge.UseCase
	Weather   weather.IWeather
	Hotels    serpapi.IHotels
	Location  *time.Location
	Now       func() time.Time
	Logger    pkgLog.Logger
}

func (d Deps) normalize() Deps {
	if d.Location == nil {
		d.Location = time.UTC
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = pkgLog.NewNop()
	}
	return d
}

// NewAll returns the intent to specialist table. planTools are offered to
// the itinerary specialist when the trip has dates.
func NewAll(d Deps, planTools ...agent.Tool) map[model.Intent]Specialist {
	return map[model.Intent]Specialist{
		model.IntentEat:     NewFood(d),
		model.IntentVisit:   NewLocation(d),
		model.IntentPlan:    NewItinerary(d, planTools...),
		model.IntentBook:    NewBooking(d),
		model.IntentWeather: NewWeather(d),
		model.IntentOther:   NewDefault(d),
	}
}

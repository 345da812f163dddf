package specialist

import (
	"context"
	"fmt"
	"strings"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/itinerary"
	"travel-assistant/internal/knowledge"
	"travel-assistant/internal/model"
)

// Itinerary plans day-by-day trips. With dates it lets the model look up
// the weather at each checkpoint through the tool loop.
type Itinerary struct {
	d     Deps
	tools *agent.ToolRegistry
}

// NewItinerary creates the planner. tools are offered to the model only
// when the trip has dates.
func NewItinerary(d Deps, tools ...agent.Tool) *Itinerary {
	return &Itinerary{d: d.normalize(), tools: agent.NewToolRegistry(tools...)}
}

func (s *Itinerary) Name() string { return NameItinerary }

func (s *Itinerary) Handle(ctx context.Context, req Request) (Result, error) {
	r := req.Resolved
	plan := itinerary.BuildSkeleton(r)
	if plan.Scenario == itinerary.NeedsDestination {
		return Result{Text: itinerary.Clarification(), Clarification: true}, nil
	}

	dest := title(plan.Destination)
	query := searchQuery(r, plan.Destination)
	places := references(ctx, s.d.Knowledge, s.d.Logger, query, plan.Destination, knowledge.TypeLocation, plan.Resources.LocationItems)
	foods := references(ctx, s.d.Knowledge, s.d.Logger, query, plan.Destination, knowledge.TypeFood, plan.Resources.FoodItems)

	var (
		text string
		err  error
	)
	if plan.Scenario == itinerary.PlanningWithTime {
		text, err = s.planWithTime(ctx, req, plan, dest, places, foods)
	} else {
		prompt := s.prompt(r, plan, dest, places, foods, PromptItineraryWithoutTime)
		text, err = generate(ctx, s.d.LLM, req.TimeContext, prompt, PlanTemperature)
	}
	plan.Complete()

	if err != nil {
		s.d.Logger.Warnf(ctx, "%s: LLM unavailable, returning skeleton: %v", LogPrefixItinerary, err)
		return Result{Text: fallbackPlan(plan, places, foods), Degraded: true}, nil
	}
	if plan.Notice != "" && !strings.Contains(text, plan.Notice) {
		text += "\n\n" + plan.Notice
	}
	return Result{Text: text}, nil
}

func (s *Itinerary) planWithTime(ctx context.Context, req Request, plan itinerary.Plan, dest string, places, foods []string) (string, error) {
	dates := make([]string, len(plan.Days))
	for i, d := range plan.Days {
		dates[i] = d.Date
	}
	extra := fmt.Sprintf(PromptItineraryWithTime, plan.Destination, strings.Join(dates, ", "))
	prompt := s.prompt(req.Resolved, plan, dest, places, foods, extra)

	if s.d.LLM == nil {
		return "", ErrNoLLM
	}
	if s.tools.Len() == 0 {
		return generate(ctx, s.d.LLM, req.TimeContext, prompt, PlanTemperature)
	}
	return agent.RunTools(ctx, s.d.LLM, s.tools, request(req.TimeContext, prompt, PlanTemperature), agent.MaxAgentSteps, s.d.Logger)
}

func (s *Itinerary) prompt(r model.Resolved, plan itinerary.Plan, dest string, places, foods []string, task string) string {
	return fmt.Sprintf(PromptItinerary,
		r.Query, dest, plan.TripLength, contextBlockForPlan(plan)+contextBlock(r),
		plan.Resources.LocationItems, bulletList(places),
		plan.Resources.FoodItems, bulletList(foods),
		task, plan.Render(),
	)
}

func contextBlockForPlan(plan itinerary.Plan) string {
	if plan.StartDate == "" {
		return ""
	}
	return fmt.Sprintf("Ngày bắt đầu: %s, ngày kết thúc: %s\n", plan.StartDate, plan.EndDate)
}

func fallbackPlan(plan itinerary.Plan, places, foods []string) string {
	var b strings.Builder
	b.WriteString(plan.Render())
	if len(places) > 0 {
		b.WriteString("\n\n")
		b.WriteString(FallbackResourcesPlace)
		b.WriteString("\n")
		b.WriteString(bulletList(places))
	}
	if len(foods) > 0 {
		b.WriteString("\n\n")
		b.WriteString(FallbackResourcesFood)
		b.WriteString("\n")
		b.WriteString(bulletList(foods))
	}
	return b.String()
}

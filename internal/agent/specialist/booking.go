package specialist

import (
	"context"
	"fmt"
	"strings"

	"travel-assistant/internal/agent/tools"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/serpapi"
)

// Booking searches hotels for the resolved stay and formats the shortlist.
type Booking struct {
	d Deps
}

// NewBooking creates the hotel specialist.
func NewBooking(d Deps) *Booking {
	return &Booking{d: d.normalize()}
}

func (s *Booking) Name() string { return NameBooking }

func (s *Booking) Handle(ctx context.Context, req Request) (Result, error) {
	r := req.Resolved
	now := s.d.Now().In(s.d.Location)

	checkIn, checkOut, err := tools.StayDates(r.StartDate, r.EndDate, now)
	if err != nil {
		s.d.Logger.Warnf(ctx, "%s: bad resolved dates %q-%q: %v", LogPrefixBooking, r.StartDate, r.EndDate, err)
		checkIn, checkOut, _ = tools.StayDates("", "", now)
	}

	budget := r.Preferences[model.PrefBudget]
	if _, ok := budgetLabels[budget]; !ok {
		budget = serpapi.BudgetMidRange
	}
	adults := req.Adults
	if adults <= 0 {
		adults = 2
	}

	q := serpapi.HotelQuery{
		Destination: r.Destination,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      adults,
		Children:    req.Children,
		Budget:      budget,
	}
	out := tools.SearchHotels(ctx, s.d.Hotels, q, s.d.Logger)

	return Result{
		Text:     formatBooking(q, out),
		Degraded: out.Source != "live" && s.d.Hotels != nil,
	}, nil
}

func formatBooking(q serpapi.HotelQuery, out tools.SearchHotelsOutput) string {
	children := ""
	if q.Children > 0 {
		children = fmt.Sprintf(BookingChildren, q.Children)
	}
	nights := int(q.CheckOut.Sub(q.CheckIn).Hours()/24 + 0.5)

	var b strings.Builder
	fmt.Fprintf(&b, BookingSummary,
		title(q.Destination),
		q.CheckIn.Format(displayDate), q.CheckOut.Format(displayDate), nights,
		q.Adults, children, budgetLabels[q.Budget],
	)
	b.WriteString("\n\n")

	if len(out.Hotels) > 0 {
		b.WriteString(BookingLiveHeader)
		for i, h := range out.Hotels {
			b.WriteString("\n")
			fmt.Fprintf(&b, BookingHotelLine, i+1, h.Name, h.Rating, h.Price, h.Highlights)
			if h.Link != "" {
				fmt.Fprintf(&b, BookingLinkLine, h.Link)
			}
		}
	} else {
		b.WriteString(BookingStaticHeader)
		b.WriteString("\n")
		b.WriteString(bulletList(out.Suggestions))
	}

	b.WriteString("\n\n")
	b.WriteString(BookingTips)
	return b.String()
}



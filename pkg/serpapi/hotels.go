package serpapi

import (
	"fmt"
	"sort"
	"strings"

	"travel-assistant/pkg/textnorm"
)

// FilterByBudget keeps hotels rated at or above the tier minimum, sorted by
// rating descending, at most MaxHotels.
func FilterByBudget(hotels []Hotel, budget string) []Hotel {
	minRating, ok := minRatings[budget]
	if !ok {
		minRating = minRatings[BudgetMidRange]
	}

	var kept []Hotel
	for _, h := range hotels {
		if h.OverallRating >= minRating {
			kept = append(kept, h)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].OverallRating > kept[j].OverallRating
	})
	if len(kept) > MaxHotels {
		kept = kept[:MaxHotels]
	}
	return kept
}

// StaticRecommendations returns curated suggestions for a destination and
// tier, falling back to generic ones for unknown destinations.
func StaticRecommendations(destination, budget string) []string {
	if _, ok := defaultHotels[budget]; !ok {
		budget = BudgetMidRange
	}
	if key, ok := staticKeys[textnorm.Fold(destination)]; ok {
		if recs := staticHotels[key][budget]; len(recs) > 0 {
			return recs
		}
	}
	return defaultHotels[budget]
}

// Price renders the nightly rate.
func (h Hotel) Price() string {
	switch {
	case h.RatePerNight.ExtractedLowest > 0:
		return fmt.Sprintf("Từ %s VND/đêm", groupThousands(int64(h.RatePerNight.ExtractedLowest)))
	case h.RatePerNight.Lowest != "":
		return "Từ " + h.RatePerNight.Lowest + "/đêm"
	default:
		return "Liên hệ để biết giá"
	}
}

// Highlights lists the first amenities, or the property type.
func (h Hotel) Highlights() string {
	amenities := h.Amenities
	if len(amenities) > maxAmenities {
		amenities = amenities[:maxAmenities]
	}
	if len(amenities) == 0 && h.Type != "" {
		amenities = []string{h.Type}
	}
	if len(amenities) == 0 {
		return "Wi-Fi, Điều hòa"
	}
	return strings.Join(amenities, ", ")
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}

package tools

// Tool names as exposed to the model.
const (
	NameRealtimeWeather = "realtime_weather"
	NameSearchKnowledge = "search_travel_knowledge"
	NameSearchHotels    = "search_hotels"
)

const (
	dateLayout        = "2006-01-02"
	defaultStayNights = 2
	defaultLeadDays   = 7
)

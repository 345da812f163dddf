package itinerary

// Resources is how many food and location suggestions a trip needs.
type Resources struct {
	FoodItems     int `json:"food_items"`
	LocationItems int `json:"location_items"`
}

// Scenario is the planning branch chosen for a request.
type Scenario string

const (
	NeedsDestination    Scenario = "needs_destination"
	PlanningWithoutTime Scenario = "planning_without_time"
	PlanningWithTime    Scenario = "planning_with_time"
)

// State tracks a plan through its lifecycle. A plan starts in the state
// named after its scenario and moves to StateDone once output exists.
type State string

const (
	StateNeedsDestination    State = State(NeedsDestination)
	StatePlanningWithoutTime State = State(PlanningWithoutTime)
	StatePlanningWithTime    State = State(PlanningWithTime)
	StateDone                State = "done"
)

// Period is one of the four daily time slots.
type Period string

const (
	Morning   Period = "Sáng"
	Noon      Period = "Trưa"
	Afternoon Period = "Chiều"
	Evening   Period = "Tối"
)

// SlotKind says what fills a slot.
type SlotKind string

const (
	KindActivity SlotKind = "activity"
	KindMeal     SlotKind = "meal"
	KindShopping SlotKind = "shopping"
	KindFree     SlotKind = "free"
)

// Slot is one time block of a day.
type Slot struct {
	Period     Period   `json:"period"`
	Kind       SlotKind `json:"kind"`
	Text       string   `json:"text"`
	Checkpoint string   `json:"checkpoint,omitempty"` // HH:MM, only with dates
	Date       string   `json:"date,omitempty"`
}

// Day is one day of the skeleton.
type Day struct {
	Number      int    `json:"number"`
	Date        string `json:"date,omitempty"`
	FreeAndEasy bool   `json:"free_and_easy"`
	Slots       []Slot `json:"slots"`
}

// Plan is the itinerary skeleton handed to the LLM and rendered to users.
type Plan struct {
	Scenario    Scenario  `json:"scenario"`
	State       State     `json:"state"`
	Destination string    `json:"destination"`
	TripLength  int       `json:"trip_length"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	Resources   Resources `json:"resources"`
	Days        []Day     `json:"days"`
	Notice      string    `json:"notice,omitempty"`
}

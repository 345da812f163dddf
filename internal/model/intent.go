package model

// Intent is the coarse category of a user request.
type Intent string

const (
	IntentEat     Intent = "eat"
	IntentVisit   Intent = "visit"
	IntentPlan    Intent = "plan"
	IntentBook    Intent = "book"
	IntentWeather Intent = "weather"
	IntentOther   Intent = "other"
)

// AllIntents lists every intent in tie-break order. Classification ties
// resolve to whichever intent appears first here.
var AllIntents = []Intent{
	IntentEat,
	IntentVisit,
	IntentPlan,
	IntentBook,
	IntentWeather,
	IntentOther,
}

// IsValid reports whether i is one of the defined intents.
func (i Intent) IsValid() bool {
	for _, known := range AllIntents {
		if i == known {
			return true
		}
	}
	return false
}

func (i Intent) String() string {
	return string(i)
}

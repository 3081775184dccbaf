package router

// Intent is one label of the closed classification taxonomy.
type Intent string

const (
	IntentSearchRecommendation Intent = "search_recommendation"
	IntentCompare              Intent = "compare"
	IntentDetails              Intent = "details"
	IntentQuery                Intent = "query"
	IntentChitchat             Intent = "chitchat"
	IntentIrrelevant           Intent = "irrelevant"
	IntentAdversarial          Intent = "adversarial"
)

// Intents lists the whole taxonomy.
var Intents = []Intent{
	IntentSearchRecommendation,
	IntentCompare,
	IntentDetails,
	IntentQuery,
	IntentChitchat,
	IntentIrrelevant,
	IntentAdversarial,
}

// Valid reports whether i belongs to the taxonomy.
func (i Intent) Valid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// NeedsData reports whether answering the intent requires a catalog lookup.
func (i Intent) NeedsData() bool {
	switch i {
	case IntentSearchRecommendation, IntentCompare, IntentDetails:
		return true
	default:
		return false
	}
}

// RouterOutput is the JSON document the classifier model returns.
type RouterOutput struct {
	Intent Intent `json:"intent"`
}

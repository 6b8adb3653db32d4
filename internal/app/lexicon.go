package app

// Keyword lexicons driving query interpretation. Everything is matched as a
// lowercase substring. Tagged lexicons are ordered slices, not maps, so that
// any first-match rule stays reproducible.

var budgetKeywords = []string{"budget", "cheap", "affordable", "low cost", "economical"}

var premiumKeywords = []string{"premium", "luxury", "high end", "expensive", "fine dining", "best"}

type taggedLexicon struct {
	tag      string
	keywords []string
}

var cuisineLexicons = []taggedLexicon{
	{"south indian", []string{"south indian", "dosa", "idli", "sambar", "udupi"}},
	{"north indian", []string{"north indian", "roti", "naan", "punjabi", "dal"}},
	{"chinese", []string{"chinese", "noodles", "fried rice", "manchurian"}},
	{"italian", []string{"italian", "pizza", "pasta", "continental"}},
	{"fast food", []string{"fast food", "burger", "sandwich"}},
	{"biryani", []string{"biryani", "dum biryani", "chicken biryani"}},
	{"street food", []string{"street food", "chaat", "pani puri"}},
}

var mealLexicons = []taggedLexicon{
	{"breakfast", []string{"breakfast", "morning"}},
	{"lunch", []string{"lunch", "afternoon"}},
	{"dinner", []string{"dinner", "evening"}},
	{"snacks", []string{"snacks", "evening snacks"}},
}

var diningIntentKeywords = []string{
	"restaurant", "food", "eat", "dining", "cuisine", "meal", "lunch", "dinner", "breakfast",
}

var lodgingIntentKeywords = []string{
	"hotel", "stay", "accommodation", "room", "lodge", "guest", "night",
}

// CuisineKeywords returns the keyword list behind a cuisine tag, nil for an
// unknown tag. The catalog filter matches listings against these keywords.
func CuisineKeywords(tag string) []string {
	for _, lx := range cuisineLexicons {
		if lx.tag == tag {
			return lx.keywords
		}
	}
	return nil
}

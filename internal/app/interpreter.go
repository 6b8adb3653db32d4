package app

import (
	"strings"

	"venuefinder/internal/domain"
)

// Interpreter maps raw query text onto a detected city, structured
// preferences, and the dining/lodging intent split.
type Interpreter struct {
	kb domain.Knowledge
}

func NewInterpreter(kb domain.Knowledge) *Interpreter { return &Interpreter{kb: kb} }

// Interpret is pure: it allocates only call-local state and never touches the
// knowledge base beyond reads.
func (it *Interpreter) Interpret(query string) domain.Interpretation {
	q := strings.ToLower(strings.TrimSpace(query))

	out := domain.Interpretation{
		City:      it.detectCity(q),
		CityNamed: it.cityNamed(q),
		Prefs:     extractPreferences(q),
	}

	out.WantsDining = containsAny(q, diningIntentKeywords)
	out.WantsLodging = containsAny(q, lodgingIntentKeywords)
	if !out.WantsDining && !out.WantsLodging {
		// Unspecified intent means both kinds are in play.
		out.WantsDining, out.WantsLodging = true, true
	}
	return out
}

// detectCity walks cities in table order and returns the first whose canonical
// id or any area alias occurs in the query. First match wins: a query naming
// areas of two cities resolves to whichever city the table lists first. With
// no match the configured default city is returned.
func (it *Interpreter) detectCity(q string) string {
	for _, c := range it.kb.Cities() {
		if strings.Contains(q, c.ID) {
			return c.ID
		}
		for _, area := range c.Areas {
			if strings.Contains(q, area) {
				return c.ID
			}
		}
	}
	return it.kb.DefaultCity()
}

// cityNamed reports whether any canonical city id appears verbatim in the
// query. Area aliases do not count; the catalog filter only restricts to the
// default city when the user literally typed its name.
func (it *Interpreter) cityNamed(q string) bool {
	for _, c := range it.kb.Cities() {
		if strings.Contains(q, c.ID) {
			return true
		}
	}
	return false
}

func extractPreferences(q string) domain.Preferences {
	p := domain.Preferences{
		BudgetOnly:  containsAny(q, budgetKeywords),
		ShowPremium: containsAny(q, premiumKeywords),
	}

	for _, lx := range cuisineLexicons {
		if containsAny(q, lx.keywords) {
			p.Cuisines = append(p.Cuisines, lx.tag)
		}
	}
	for _, lx := range mealLexicons {
		if containsAny(q, lx.keywords) {
			p.MealTypes = append(p.MealTypes, lx.tag)
		}
	}

	// Fixed priority: the 4.0 phrases shadow "good".
	switch {
	case strings.Contains(q, "highly rated"),
		strings.Contains(q, "top rated"),
		strings.Contains(q, "best rated"):
		p.MinRating = 4.0
	case strings.Contains(q, "good"):
		p.MinRating = 3.5
	}
	return p
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

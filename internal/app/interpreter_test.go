package app_test

import (
	"testing"

	"venuefinder/internal/app"
	"venuefinder/internal/knowledge"
)

func loadKB(t *testing.T) *knowledge.Base {
	t.Helper()
	kb, err := knowledge.Load("bangalore")
	if err != nil {
		t.Fatalf("knowledge.Load: %v", err)
	}
	return kb
}

func TestInterpret_CityDetection(t *testing.T) {
	it := app.NewInterpreter(loadKB(t))

	cases := []struct {
		query     string
		wantCity  string
		wantNamed bool
	}{
		{"Luxury Hotels In DELHI", "delhi", true},
		{"biryani places in Hyderabad", "hyderabad", true},
		{"rooms near koramangala", "bangalore", false}, // area alias, city not named
		{"food in t nagar", "chennai", false},
		{"cheap hotels", "bangalore", false}, // no token at all -> default
		{"bandra or cp, whichever", "mumbai", false}, // two cities' areas: table order wins
	}
	for _, c := range cases {
		got := it.Interpret(c.query)
		if got.City != c.wantCity {
			t.Errorf("Interpret(%q).City = %q, want %q", c.query, got.City, c.wantCity)
		}
		if got.CityNamed != c.wantNamed {
			t.Errorf("Interpret(%q).CityNamed = %v, want %v", c.query, got.CityNamed, c.wantNamed)
		}
	}
}

func TestInterpret_Preferences(t *testing.T) {
	it := app.NewInterpreter(loadKB(t))

	p := it.Interpret("budget friendly restaurants").Prefs
	if !p.BudgetOnly || p.ShowPremium {
		t.Fatalf("budget query: %+v", p)
	}

	got := it.Interpret("luxury hotels in Delhi")
	if !got.Prefs.ShowPremium || got.City != "delhi" {
		t.Fatalf("luxury delhi query: city=%q prefs=%+v", got.City, got.Prefs)
	}

	// Both flags can be true at once; neither wins.
	p = it.Interpret("cheap but best places").Prefs
	if !p.BudgetOnly || !p.ShowPremium {
		t.Fatalf("combined query: %+v", p)
	}
}

func TestInterpret_Cuisines(t *testing.T) {
	it := app.NewInterpreter(loadKB(t))

	p := it.Interpret("pizza and noodles tonight").Prefs
	if len(p.Cuisines) != 2 || p.Cuisines[0] != "chinese" || p.Cuisines[1] != "italian" {
		t.Fatalf("cuisines = %v, want [chinese italian] in lexicon order", p.Cuisines)
	}

	p = it.Interpret("best biryani in Hyderabad").Prefs
	if len(p.Cuisines) != 1 || p.Cuisines[0] != "biryani" {
		t.Fatalf("cuisines = %v, want [biryani]", p.Cuisines)
	}
}

func TestInterpret_MealTypes(t *testing.T) {
	it := app.NewInterpreter(loadKB(t))
	p := it.Interpret("breakfast and dinner options").Prefs
	if len(p.MealTypes) != 2 || p.MealTypes[0] != "breakfast" || p.MealTypes[1] != "dinner" {
		t.Fatalf("meal types = %v", p.MealTypes)
	}
}

func TestInterpret_MinRatingPriority(t *testing.T) {
	it := app.NewInterpreter(loadKB(t))

	if p := it.Interpret("top rated dosa").Prefs; p.MinRating != 4.0 {
		t.Fatalf("top rated: MinRating = %v", p.MinRating)
	}
	if p := it.Interpret("good dosa").Prefs; p.MinRating != 3.5 {
		t.Fatalf("good: MinRating = %v", p.MinRating)
	}
	// The 4.0 phrases shadow "good" regardless of position.
	if p := it.Interpret("good and highly rated").Prefs; p.MinRating != 4.0 {
		t.Fatalf("shadowing: MinRating = %v", p.MinRating)
	}
	if p := it.Interpret("dosa place").Prefs; p.MinRating != 0 {
		t.Fatalf("unset: MinRating = %v", p.MinRating)
	}
}

func TestInterpret_Intents(t *testing.T) {
	it := app.NewInterpreter(loadKB(t))

	got := it.Interpret("cheap hotels")
	if got.WantsDining || !got.WantsLodging {
		t.Fatalf("cheap hotels: dining=%v lodging=%v", got.WantsDining, got.WantsLodging)
	}

	got = it.Interpret("budget restaurants in Mumbai")
	if !got.WantsDining || got.WantsLodging {
		t.Fatalf("budget restaurants: dining=%v lodging=%v", got.WantsDining, got.WantsLodging)
	}

	// No intent keyword at all: both kinds are in play.
	got = it.Interpret("best biryani in Hyderabad")
	if !got.WantsDining || !got.WantsLodging {
		t.Fatalf("no intent keyword: dining=%v lodging=%v", got.WantsDining, got.WantsLodging)
	}

	got = it.Interpret("dinner and a room for the night")
	if !got.WantsDining || !got.WantsLodging {
		t.Fatalf("both keywords: dining=%v lodging=%v", got.WantsDining, got.WantsLodging)
	}
}

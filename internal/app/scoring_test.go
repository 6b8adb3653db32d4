package app_test

import (
	"math"
	"testing"

	"venuefinder/internal/app"
	"venuefinder/internal/domain"
)

func hyderabad(t *testing.T) domain.CityProfile {
	t.Helper()
	c, err := loadKB(t).Lookup("hyderabad")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	return c
}

func plainDining(rating float64, price int) domain.Listing {
	return domain.Listing{
		Kind:        domain.KindDining,
		Name:        "Some Eatery",
		City:        "hyderabad",
		Rating:      rating,
		Price:       price,
		CuisineText: "Continental",
	}
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestScore_MonotonicInRating(t *testing.T) {
	city := hyderabad(t)
	lo := plainDining(3.0, 400)
	hi := plainDining(4.5, 400)
	p := domain.Preferences{}
	if app.Score(hi, p, city) <= app.Score(lo, p, city) {
		t.Fatalf("higher rating must not score lower")
	}
}

func TestScore_BudgetBonusAndPenalty(t *testing.T) {
	city := hyderabad(t) // dining threshold 450

	l := plainDining(4.0, 400)
	l.IsBudget = true
	if got := app.Score(l, domain.Preferences{BudgetOnly: true}, city); !almostEqual(got, 4.0*2+1) {
		t.Fatalf("budget bonus: got %v", got)
	}

	notBudget := plainDining(4.0, 400)
	if got := app.Score(notBudget, domain.Preferences{BudgetOnly: true}, city); !almostEqual(got, 8.0) {
		t.Fatalf("budget without flag: got %v", got)
	}

	// Outlier penalty only without BudgetOnly and only above 2x threshold.
	pricy := plainDining(4.0, 950) // > 2*450
	if got := app.Score(pricy, domain.Preferences{}, city); !almostEqual(got, 8.0-0.5) {
		t.Fatalf("outlier penalty: got %v", got)
	}
	edge := plainDining(4.0, 900) // exactly 2x, no penalty
	if got := app.Score(edge, domain.Preferences{}, city); !almostEqual(got, 8.0) {
		t.Fatalf("edge price: got %v", got)
	}
}

func TestScore_BudgetAndPremiumTogether(t *testing.T) {
	// Both flags set: the budget branch wins the adjustment, premium never
	// filters or penalizes.
	city := hyderabad(t)
	l := plainDining(4.0, 2000)
	l.IsBudget = false
	p := domain.Preferences{BudgetOnly: true, ShowPremium: true}
	if got := app.Score(l, p, city); !almostEqual(got, 8.0) {
		t.Fatalf("combined flags: got %v", got)
	}
}

func TestScore_SpecialtyBonusStacks(t *testing.T) {
	city := hyderabad(t) // specialties: hyderabadi, biryani, haleem, kebabs
	l := plainDining(4.0, 400)
	l.CuisineText = "Hyderabadi Biryani"
	if got := app.Score(l, domain.Preferences{}, city); !almostEqual(got, 8.0+0.3+0.3) {
		t.Fatalf("specialty stacking: got %v", got)
	}
}

func TestScore_KnownChainBonus(t *testing.T) {
	city := hyderabad(t) // chains: paradise, bawarchi, shah ghouse
	l := plainDining(4.0, 400)
	l.Name = "Paradise Restaurant"
	if got := app.Score(l, domain.Preferences{}, city); !almostEqual(got, 8.0+0.2) {
		t.Fatalf("chain bonus: got %v", got)
	}
}

func TestScore_VotesBonus(t *testing.T) {
	city := hyderabad(t)
	l := plainDining(4.0, 400)
	l.Votes = 99
	want := 8.0 + 0.1*math.Log1p(99)
	if got := app.Score(l, domain.Preferences{}, city); !almostEqual(got, want) {
		t.Fatalf("votes bonus: got %v want %v", got, want)
	}
}

func TestScore_LodgingStars(t *testing.T) {
	city := hyderabad(t) // lodging threshold 1900
	l := domain.Listing{
		Kind:       domain.KindLodging,
		Name:       "Stay Inn",
		City:       "hyderabad",
		Rating:     4.0,
		Price:      1500,
		StarRating: 4,
	}
	if got := app.Score(l, domain.Preferences{}, city); !almostEqual(got, 8.0+0.2*4) {
		t.Fatalf("star bonus: got %v", got)
	}

	// Absent stars default to 3.
	l.StarRating = 0
	if got := app.Score(l, domain.Preferences{}, city); !almostEqual(got, 8.0+0.2*3) {
		t.Fatalf("default stars: got %v", got)
	}
}

package app

import (
	"math"
	"strings"

	"venuefinder/internal/domain"
)

// Score computes the relevance of one listing under the given preferences and
// city context. Deterministic and side-effect-free; every term is additive, so
// the result does not depend on evaluation order. Ties are not broken here
// but by the selector's stable ordering.
//
// The city profile is the *detected* city's, even for listings from another
// city (possible when no city restriction applied): specialties, chains and
// the outlier threshold all follow the city the user asked about.
func Score(l domain.Listing, p domain.Preferences, city domain.CityProfile) float64 {
	s := l.Rating * 2

	threshold := city.BudgetDining
	if l.Kind == domain.KindLodging {
		threshold = city.BudgetLodging
	}
	if p.BudgetOnly {
		if l.IsBudget {
			s += 1
		}
	} else if l.Price > 2*threshold {
		// Mild outlier penalty when the user did not ask for budget.
		s -= 0.5
	}

	switch l.Kind {
	case domain.KindDining:
		cuisine := strings.ToLower(l.CuisineText)
		for _, specialty := range city.CuisineSpecialties {
			if strings.Contains(cuisine, specialty) {
				s += 0.3
			}
		}
		name := strings.ToLower(l.Name)
		for _, chain := range city.KnownChains {
			if strings.Contains(name, chain) {
				s += 0.2
			}
		}
		if l.Votes > 0 {
			s += 0.1 * math.Log1p(float64(l.Votes))
		}
	case domain.KindLodging:
		stars := l.StarRating
		if stars <= 0 {
			stars = 3
		}
		s += 0.2 * float64(stars)
	}
	return s
}

// ScoreAll scores every listing against one preference/city context.
func ScoreAll(ls []domain.Listing, p domain.Preferences, city domain.CityProfile) []domain.ScoredListing {
	out := make([]domain.ScoredListing, 0, len(ls))
	for _, l := range ls {
		out = append(out, domain.ScoredListing{Listing: l, Score: Score(l, p, city)})
	}
	return out
}

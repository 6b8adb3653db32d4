// Package catalog keeps the ingested listings in memory as one immutable
// snapshot behind an atomic pointer. Readers always see a complete snapshot;
// a refresh swaps in a new one while in-flight queries finish on the old.
package catalog

import (
	"strings"
	"sync/atomic"

	"venuefinder/internal/app"
	"venuefinder/internal/domain"
)

type snapshot struct {
	dining  []domain.Listing
	lodging []domain.Listing
}

type Store struct {
	snap        atomic.Pointer[snapshot]
	defaultCity string
}

func New(defaultCity string) *Store {
	return &Store{defaultCity: strings.ToLower(defaultCity)}
}

// Swap publishes a new snapshot. The slices are owned by the store afterwards
// and must not be mutated by the caller.
func (s *Store) Swap(dining, lodging []domain.Listing) {
	s.snap.Store(&snapshot{dining: dining, lodging: lodging})
}

func (s *Store) Counts() (int, int) {
	sn := s.snap.Load()
	if sn == nil {
		return 0, 0
	}
	return len(sn.dining), len(sn.lodging)
}

func (s *Store) FilterDining(city string, cityNamed bool, p domain.Preferences) ([]domain.Listing, error) {
	sn := s.snap.Load()
	if sn == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.filter(sn.dining, domain.KindDining, city, cityNamed, p), nil
}

func (s *Store) FilterLodging(city string, cityNamed bool, p domain.Preferences) ([]domain.Listing, error) {
	sn := s.snap.Load()
	if sn == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.filter(sn.lodging, domain.KindLodging, city, cityNamed, p), nil
}

// filter applies the shared policy to one kind. The default city is a
// fallback, not a filter: when the detected city is the default and the query
// never named a city, listings from every city stay eligible.
func (s *Store) filter(ls []domain.Listing, kind domain.ListingKind, city string, cityNamed bool, p domain.Preferences) []domain.Listing {
	restrictCity := city != s.defaultCity || cityNamed

	var cuisineKeywords []string
	if kind == domain.KindDining {
		for _, tag := range p.Cuisines {
			cuisineKeywords = append(cuisineKeywords, app.CuisineKeywords(tag)...)
		}
	}

	out := make([]domain.Listing, 0, len(ls))
	for _, l := range ls {
		if restrictCity && l.City != city {
			continue
		}
		if p.BudgetOnly && !l.IsBudget {
			continue
		}
		if p.MinRating > 0 && l.Rating < p.MinRating {
			continue
		}
		if len(cuisineKeywords) > 0 && !containsAnyFold(l.CuisineText, cuisineKeywords) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func containsAnyFold(text string, keywords []string) bool {
	text = strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

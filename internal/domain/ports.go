package domain

import "context"

// CatalogStore is the read side of the ingested catalog. Implementations must
// serve each call from one immutable snapshot; a concurrent swap must never be
// visible mid-query.
type CatalogStore interface {
	// FilterDining and FilterLodging apply the shared filter policy:
	// city restriction (only when city differs from the default or was named
	// verbatim in the query), budget flag, minimum rating, and for dining
	// cuisine keyword matching. An empty result is a value, not an error.
	FilterDining(city string, cityNamed bool, p Preferences) ([]Listing, error)
	FilterLodging(city string, cityNamed bool, p Preferences) ([]Listing, error)

	// Swap atomically replaces the snapshot. In-flight reads keep the old one.
	Swap(dining, lodging []Listing)

	// Counts reports snapshot sizes per kind (0, 0 before the first Swap).
	Counts() (dining, lodging int)
}

// Knowledge is the static city reference table.
type Knowledge interface {
	// Lookup fails with ErrUnknownCity only if id is absent.
	Lookup(id string) (CityProfile, error)
	// Cities returns profiles in their fixed, load-time order. First-match
	// city detection depends on this order.
	Cities() []CityProfile
	// DefaultCity is the fallback when a query names no city or area.
	DefaultCity() string
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Recommendation is the full response for one query.
type Recommendation struct {
	Results     []ScoredListing
	City        string
	Preferences Preferences
}

package domain

// ListingKind discriminates the two catalog variants.
type ListingKind string

const (
	KindDining  ListingKind = "dining"
	KindLodging ListingKind = "lodging"
)

// Listing is one catalog row, constructed once at ingestion and read-only
// afterwards. City and IsBudgetFriendly are derived against the city
// thresholds at ingestion time and are never recomputed mid-query.
type Listing struct {
	Kind         ListingKind
	Name         string
	LocationText string
	City         string  // canonical lowercase city id
	Rating       float64 // clamped to [0,5] at ingestion
	Price        int     // cost-for-two (dining) or nightly price (lodging)
	IsBudget     bool

	// dining-specific
	CuisineText string
	Votes       int

	// lodging-specific
	StarRating int
}

// ScoredListing pairs a listing with its relevance score for one query.
type ScoredListing struct {
	Listing
	Score float64
}

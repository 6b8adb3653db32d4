package domain

// CityProfile is the static reference record for one supported city.
// Immutable after load; safe to share across calls.
type CityProfile struct {
	ID                 string
	Areas              []string // lowercase aliases, e.g. "koramangala"
	CuisineSpecialties []string
	KnownChains        []string
	BudgetDining       int // cost-for-two threshold
	BudgetLodging      int // nightly price threshold
}

// Preferences is the structured view of one query, derived per call and
// discarded after the response is built. BudgetOnly and ShowPremium may both
// be true; only BudgetOnly filters, the rest are score adjustments.
type Preferences struct {
	BudgetOnly  bool     `json:"budget_only"`
	ShowPremium bool     `json:"show_premium"`
	Cuisines    []string `json:"cuisines,omitempty"`
	MealTypes   []string `json:"meal_types,omitempty"`
	MinRating   float64  `json:"min_rating,omitempty"` // 0 means unset
}

// Interpretation is everything the interpreter derives from raw query text.
type Interpretation struct {
	City         string
	CityNamed    bool // a canonical city name appears verbatim in the query
	Prefs        Preferences
	WantsDining  bool
	WantsLodging bool
}

// Package knowledge holds the embedded city reference table. The table is
// loaded once at process start and never mutated, so a Base can be shared by
// any number of concurrent queries.
package knowledge

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"venuefinder/internal/domain"
)

//go:embed cities.yaml
var citiesYAML []byte

type cityEntry struct {
	ID                 string   `yaml:"id"`
	Areas              []string `yaml:"areas"`
	CuisineSpecialties []string `yaml:"cuisine_specialties"`
	KnownChains        []string `yaml:"known_chains"`
	BudgetDining       int      `yaml:"budget_threshold_dining"`
	BudgetLodging      int      `yaml:"budget_threshold_lodging"`
}

type Base struct {
	cities      []domain.CityProfile // file order, drives first-match detection
	byID        map[string]int
	defaultCity string
}

// Load parses the embedded table. defaultCity must be one of the listed ids;
// an empty value falls back to the first city in the file.
func Load(defaultCity string) (*Base, error) {
	var entries []cityEntry
	if err := yaml.Unmarshal(citiesYAML, &entries); err != nil {
		return nil, fmt.Errorf("parse cities table: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("cities table is empty")
	}

	b := &Base{byID: make(map[string]int, len(entries))}
	for _, e := range entries {
		id := strings.ToLower(strings.TrimSpace(e.ID))
		if id == "" {
			return nil, fmt.Errorf("cities table: entry without id")
		}
		if _, dup := b.byID[id]; dup {
			return nil, fmt.Errorf("cities table: duplicate id %q", id)
		}
		b.byID[id] = len(b.cities)
		b.cities = append(b.cities, domain.CityProfile{
			ID:                 id,
			Areas:              e.Areas,
			CuisineSpecialties: e.CuisineSpecialties,
			KnownChains:        e.KnownChains,
			BudgetDining:       e.BudgetDining,
			BudgetLodging:      e.BudgetLodging,
		})
	}

	defaultCity = strings.ToLower(strings.TrimSpace(defaultCity))
	if defaultCity == "" {
		defaultCity = b.cities[0].ID
	}
	if _, ok := b.byID[defaultCity]; !ok {
		return nil, fmt.Errorf("default city %q: %w", defaultCity, domain.ErrUnknownCity)
	}
	b.defaultCity = defaultCity
	return b, nil
}

func (b *Base) Lookup(id string) (domain.CityProfile, error) {
	i, ok := b.byID[strings.ToLower(id)]
	if !ok {
		return domain.CityProfile{}, fmt.Errorf("%q: %w", id, domain.ErrUnknownCity)
	}
	return b.cities[i], nil
}

func (b *Base) Cities() []domain.CityProfile { return b.cities }

func (b *Base) DefaultCity() string { return b.defaultCity }
